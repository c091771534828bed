package database

import "fmt"

func (d *Database) RunMigrations() error {
	// Create listings table
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			advertisement_type TEXT,
			adres TEXT,
			view INTEGER DEFAULT 0,
			is_gold INTEGER DEFAULT 0,
			img_1 TEXT,
			img_2 TEXT,
			img_3 TEXT,
			sale_price REAL,
			rent_price REAL,
			contract_id TEXT,
			description TEXT,
			description_en TEXT,
			description_ar TEXT,
			deed TEXT,
			bed_type TEXT,
			status INTEGER DEFAULT 1,
			creation_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			update_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create listings table: %v", err)
	}

	// Index for the public browse ordering
	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_listings_status_created
		ON listings(status, creation_date);
	`)
	if err != nil {
		return err
	}

	// Index for contract searches
	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_listings_contract
		ON listings(contract_id);
	`)
	if err != nil {
		return err
	}

	return nil
}
