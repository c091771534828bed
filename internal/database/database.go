package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todayproje/server/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a listing id does not match any row
// (or, for public reads, no active row).
var ErrNotFound = errors.New("listing not found")

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}

const listingColumns = `
        id, title, advertisement_type, adres, view, is_gold,
        img_1, img_2, img_3, sale_price, rent_price, contract_id,
        description, description_en, description_ar, deed, bed_type,
        status, creation_date, update_date`

func scanListing(row interface{ Scan(...interface{}) error }) (models.Listing, error) {
	var l models.Listing
	var adType, address, img1, img2, img3 sql.NullString
	var contractID, desc, descEN, descAR, deed, bedType sql.NullString
	var salePrice, rentPrice sql.NullFloat64
	var isGold, status sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&l.ID,
		&l.Title,
		&adType,
		&address,
		&l.ViewCount,
		&isGold,
		&img1,
		&img2,
		&img3,
		&salePrice,
		&rentPrice,
		&contractID,
		&desc,
		&descEN,
		&descAR,
		&deed,
		&bedType,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return l, err
	}

	l.Type = adType.String
	l.Address = address.String
	l.Image1 = img1.String
	l.Image2 = img2.String
	l.Image3 = img3.String
	l.ContractID = contractID.String
	l.Description = desc.String
	l.DescriptionEN = descEN.String
	l.DescriptionAR = descAR.String
	l.Deed = deed.String
	l.BedType = bedType.String
	l.IsGold = isGold.Int64 != 0
	l.Active = status.Int64 != 0

	if salePrice.Valid {
		p := salePrice.Float64
		l.SalePrice = &p
	}
	if rentPrice.Valid {
		p := rentPrice.Float64
		l.RentPrice = &p
	}
	if createdAt.Valid {
		l.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		l.UpdatedAt = updatedAt.Time
	}

	return l, nil
}

func (d *Database) queryListings(query string, args ...interface{}) ([]models.Listing, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// TopViewed returns the most viewed active listings, up to limit.
func (d *Database) TopViewed(limit int) ([]models.Listing, error) {
	return d.queryListings(`
        SELECT `+listingColumns+`
        FROM listings
        WHERE status = 1
        ORDER BY view DESC
        LIMIT ?
    `, limit)
}

// Newest returns the most recently created active listings, up to limit.
func (d *Database) Newest(limit int) ([]models.Listing, error) {
	return d.queryListings(`
        SELECT `+listingColumns+`
        FROM listings
        WHERE status = 1
        ORDER BY creation_date DESC
        LIMIT ?
    `, limit)
}

// Browse returns one page of active listings, newest first. A non-empty
// search term narrows results to contract ids containing the term. A page
// beyond the last one yields an empty page, not an error.
func (d *Database) Browse(page, perPage int, search string) (models.Page, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	countQuery := "SELECT COUNT(*) FROM listings WHERE status = 1"
	listQuery := `
        SELECT ` + listingColumns + `
        FROM listings
        WHERE status = 1`

	var countArgs, listArgs []interface{}
	if search != "" {
		countQuery += " AND contract_id LIKE ?"
		listQuery += " AND contract_id LIKE ?"
		pattern := "%" + search + "%"
		countArgs = append(countArgs, pattern)
		listArgs = append(listArgs, pattern)
	}
	listQuery += " ORDER BY creation_date DESC LIMIT ? OFFSET ?"
	listArgs = append(listArgs, perPage, offset)

	var total int
	if err := d.db.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return models.Page{}, fmt.Errorf("failed to count listings: %w", err)
	}

	listings, err := d.queryListings(listQuery, listArgs...)
	if err != nil {
		return models.Page{}, fmt.Errorf("failed to query listings: %w", err)
	}

	totalPages := (total + perPage - 1) / perPage
	return models.Page{
		Listings:   listings,
		Number:     page,
		TotalPages: totalPages,
		TotalCount: total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}, nil
}

// GetActive fetches an active listing by id. Inactive and missing rows both
// resolve to ErrNotFound.
func (d *Database) GetActive(id int64) (models.Listing, error) {
	row := d.db.QueryRow(`
        SELECT `+listingColumns+`
        FROM listings
        WHERE id = ? AND status = 1
    `, id)

	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return l, ErrNotFound
	}
	return l, err
}

// Get fetches a listing by id regardless of status.
func (d *Database) Get(id int64) (models.Listing, error) {
	row := d.db.QueryRow(`
        SELECT `+listingColumns+`
        FROM listings
        WHERE id = ?
    `, id)

	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return l, ErrNotFound
	}
	return l, err
}

// IncrementViews bumps the view counter of an active listing by one. The
// update is relative, so concurrent increments never lose counts. A row
// deleted or hidden in the meantime makes this a no-op.
func (d *Database) IncrementViews(id int64) error {
	_, err := d.db.Exec(`
        UPDATE listings SET view = view + 1 WHERE id = ? AND status = 1
    `, id)
	return err
}

// Insert creates a listing. Status is forced active and both timestamps are
// set to now. Returns the new id.
func (d *Database) Insert(l models.Listing) (int64, error) {
	now := time.Now().UTC()
	result, err := d.db.Exec(`
        INSERT INTO listings
        (title, advertisement_type, adres, is_gold, img_1, img_2, img_3,
         sale_price, rent_price, contract_id, description, description_en,
         description_ar, deed, bed_type, status, creation_date, update_date)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
    `,
		l.Title,
		l.Type,
		l.Address,
		boolToInt(l.IsGold),
		l.Image1,
		l.Image2,
		l.Image3,
		l.SalePrice,
		l.RentPrice,
		l.ContractID,
		l.Description,
		l.DescriptionEN,
		l.DescriptionAR,
		l.Deed,
		l.BedType,
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert listing: %w", err)
	}
	return result.LastInsertId()
}

// Update replaces the editable fields of a listing and refreshes
// update_date. creation_date and the view counter stay untouched.
func (d *Database) Update(id int64, l models.Listing) error {
	result, err := d.db.Exec(`
        UPDATE listings
        SET title = ?, advertisement_type = ?, adres = ?, is_gold = ?,
            img_1 = ?, img_2 = ?, img_3 = ?, sale_price = ?, rent_price = ?,
            contract_id = ?, description = ?, description_en = ?,
            description_ar = ?, deed = ?, bed_type = ?, update_date = ?
        WHERE id = ?
    `,
		l.Title,
		l.Type,
		l.Address,
		boolToInt(l.IsGold),
		l.Image1,
		l.Image2,
		l.Image3,
		l.SalePrice,
		l.RentPrice,
		l.ContractID,
		l.Description,
		l.DescriptionEN,
		l.DescriptionAR,
		l.Deed,
		l.BedType,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleStatus flips a listing between active and hidden and returns the new
// state. Unknown ids mutate nothing and return ErrNotFound.
func (d *Database) ToggleStatus(id int64) (bool, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var status int
	err = tx.QueryRow("SELECT status FROM listings WHERE id = ?", id).Scan(&status)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to read listing status: %w", err)
	}

	newStatus := 0
	if status == 0 {
		newStatus = 1
	}
	_, err = tx.Exec(`
        UPDATE listings SET status = ?, update_date = ? WHERE id = ?
    `, newStatus, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to toggle listing status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return newStatus == 1, nil
}

// Delete removes a listing and returns the image paths the row held so the
// caller can clean up owned files. Unknown ids return ErrNotFound.
func (d *Database) Delete(id int64) ([]string, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var img1, img2, img3 sql.NullString
	err = tx.QueryRow(`
        SELECT img_1, img_2, img_3 FROM listings WHERE id = ?
    `, id).Scan(&img1, &img2, &img3)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read listing images: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM listings WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("failed to delete listing: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return []string{img1.String, img2.String, img3.String}, nil
}

// All returns every listing regardless of status, newest first. Used by the
// admin table feed.
func (d *Database) All() ([]models.Listing, error) {
	return d.queryListings(`
        SELECT ` + listingColumns + `
        FROM listings
        ORDER BY creation_date DESC
    `)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
