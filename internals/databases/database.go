package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attendanceModel "institusiku_backend/internals/features/academics/attendance/model"
	batchModel "institusiku_backend/internals/features/academics/batches/model"
	courseModel "institusiku_backend/internals/features/academics/courses/model"
	facultyModel "institusiku_backend/internals/features/academics/faculties/model"
	studentModel "institusiku_backend/internals/features/academics/students/model"
	counterModel "institusiku_backend/internals/features/counters/model"
	accountingModel "institusiku_backend/internals/features/finance/accounting/model"
	paymentModel "institusiku_backend/internals/features/finance/payments/model"
	salaryModel "institusiku_backend/internals/features/finance/salaries/model"
	userModel "institusiku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ DSN lengkap + statement_timeout (selaras dengan HTTP timeout guard)
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=institusiku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan automigrate semua model aplikasi.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&batchModel.BatchModel{},
		&courseModel.CourseModel{},
		&facultyModel.FacultyModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceModel{},
		&attendanceModel.TeacherHourModel{},
		&paymentModel.PaymentModel{},
		&salaryModel.SalaryModel{},
		&accountingModel.LedgerGroupModel{},
		&accountingModel.LedgerModel{},
		&accountingModel.VoucherModel{},
		&counterModel.CounterModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
