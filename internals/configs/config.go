package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var (
	JWTSecret    string
	UploadFolder string
	GSTPercent   decimal.Decimal
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	UploadFolder = GetEnvOr("UPLOAD_FOLDER", "static/uploads")
	if err := os.MkdirAll(UploadFolder, 0o755); err != nil {
		log.Printf("⚠️ Gagal membuat folder upload %s: %v", UploadFolder, err)
	}

	GSTPercent = loadGSTPercent()
	log.Printf("✅ GST_PERCENT = %s%%", GSTPercent.String())
}

// GST default 18%, bisa dioverride lewat env (angka persen, mis. "18" / "12.5").
func loadGSTPercent() decimal.Decimal {
	raw := GetEnvOr("GST_PERCENT", "18")
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		log.Printf("⚠️ GST_PERCENT tidak valid (%q), pakai 18", raw)
		return decimal.NewFromInt(18)
	}
	return d
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
