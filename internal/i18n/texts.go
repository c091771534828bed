package i18n

// UI string tables. Keys missing from en/ar fall back to tr, then to the
// key itself.
var texts = map[string]map[string]string{
	"tr": {
		"home":                   "Anasayfa",
		"about":                  "Hakkımızda",
		"advertisements":         "İlanlar",
		"for_sale":               "Satılık",
		"for_rent":               "Kiralık",
		"contact":                "İletişim",
		"search_placeholder":     "Ara...",
		"popular_ads":            "Popüler İlanlar",
		"recommended_ads":        "Önerilen İlanlar",
		"view_details":           "Detayları Görüntüle",
		"price":                  "Fiyat",
		"views":                  "Görüntülenme",
		"gold_ad":                "Altın İlan",
		"view_all":               "Tümünü Gör",
		"monthly":                "Aylık",
		"contract_number":        "Sözleşme No",
		"search_button":          "Ara",
		"price_not_specified":    "Fiyat Belirtilmemiş",
		"no_results_found":       "için sonuç bulunamadı",
		"no_ads_yet":             "Henüz ilan bulunmuyor",
		"room_type":              "Oda Tipi",
		"ad_type":                "İlan Tipi",
		"not_specified":          "Belirtilmemiş",
		"ad_details":             "İlan Detayı",
		"photos":                 "Fotoğraflar",
		"rent_price":             "Kira Fiyatı",
		"sale_price":             "Satış Fiyatı",
		"phone":                  "Telefon",
		"address":                "Adres",
		"listing_not_found":      "İlan bulunamadı!",
		"login_success":          "Giriş başarılı!",
		"login_failed":           "Kullanıcı adı veya şifre hatalı!",
		"logged_out":             "Çıkış yaptınız!",
		"listing_added":          "İlan eklendi!",
		"listing_updated":        "İlan güncellendi!",
		"listing_deleted":        "İlan silindi!",
		"all_rights_reserved":    "© 2025 Today Proje Gayrimenkul | Tüm Hakları Saklıdır.",
		"we_are_here":            "Sizin İçin Buradayız",
		"investment_advisor":     "Yatırım Danışmanınız",
		"real_estate_consulting": "Gayrimenkul Danışmanlık",
	},
	"en": {
		"home":                   "Home",
		"about":                  "About Us",
		"advertisements":         "Advertisements",
		"for_sale":               "For Sale",
		"for_rent":               "For Rent",
		"contact":                "Contact",
		"search_placeholder":     "Search...",
		"popular_ads":            "Popular Advertisements",
		"recommended_ads":        "Recommended Advertisements",
		"view_details":           "View Details",
		"price":                  "Price",
		"views":                  "Views",
		"gold_ad":                "Gold Advertisement",
		"view_all":               "View All",
		"monthly":                "Monthly",
		"contract_number":        "Contract Number",
		"search_button":          "Search",
		"price_not_specified":    "Price Not Specified",
		"no_results_found":       "no results found for",
		"no_ads_yet":             "No advertisements yet",
		"room_type":              "Room Type",
		"ad_type":                "Advertisement Type",
		"not_specified":          "Not Specified",
		"ad_details":             "Advertisement Details",
		"photos":                 "Photos",
		"rent_price":             "Rent Price",
		"sale_price":             "Sale Price",
		"phone":                  "Phone",
		"address":                "Address",
		"listing_not_found":      "Advertisement not found!",
		"login_success":          "Successfully logged in!",
		"login_failed":           "Invalid username or password!",
		"logged_out":             "You have been logged out!",
		"listing_added":          "Advertisement added successfully!",
		"listing_updated":        "Advertisement updated successfully!",
		"listing_deleted":        "Advertisement deleted successfully!",
		"all_rights_reserved":    "© 2025 Today Proje Gayrimenkul | All Rights Reserved.",
		"we_are_here":            "We Are Here For You",
		"investment_advisor":     "Your Investment Advisor",
		"real_estate_consulting": "Real Estate Consulting",
	},
	"ar": {
		"home":                   "الرئيسية",
		"about":                  "من نحن",
		"advertisements":         "الإعلانات",
		"for_sale":               "للبيع",
		"for_rent":               "للإيجار",
		"contact":                "اتصل بنا",
		"search_placeholder":     "بحث...",
		"popular_ads":            "الإعلانات الشائعة",
		"recommended_ads":        "الإعلانات الموصى بها",
		"view_details":           "عرض التفاصيل",
		"price":                  "السعر",
		"views":                  "المشاهدات",
		"gold_ad":                "إعلان ذهبي",
		"view_all":               "عرض الكل",
		"monthly":                "شهرياً",
		"contract_number":        "رقم العقد",
		"search_button":          "بحث",
		"price_not_specified":    "السعر غير محدد",
		"no_results_found":       "لم يتم العثور على نتائج لـ",
		"no_ads_yet":             "لا توجد إعلانات بعد",
		"room_type":              "نوع الغرفة",
		"ad_type":                "نوع الإعلان",
		"not_specified":          "غير محدد",
		"ad_details":             "تفاصيل الإعلان",
		"photos":                 "الصور",
		"rent_price":             "سعر الإيجار",
		"sale_price":             "سعر البيع",
		"phone":                  "الهاتف",
		"address":                "العنوان",
		"listing_not_found":      "الإعلان غير موجود!",
		"all_rights_reserved":    "© 2025 Today Proje Gayrimenkul | جميع الحقوق محفوظة.",
		"we_are_here":            "نحن هنا من أجلك",
		"investment_advisor":     "مستشار الاستثمار الخاص بك",
		"real_estate_consulting": "استشارات العقارات",
	},
}
