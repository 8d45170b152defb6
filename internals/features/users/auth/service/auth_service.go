package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"institusiku_backend/internals/configs"
	userModel "institusiku_backend/internals/features/users/user/model"
)

// Masa berlaku access token.
const tokenTTL = 24 * time.Hour

// EnsureDefaultAdmin membuat akun admin awal (admin / admin123) bila tabel
// users masih kosong, supaya instalasi baru langsung bisa login.
func EnsureDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := userModel.UserModel{
		UserUsername:     "admin",
		UserName:         "Administrator",
		UserRole:         "admin",
		UserPasswordHash: string(hash),
	}
	return db.Create(&admin).Error
}

// Authenticate memverifikasi username+password, balikan user bila cocok.
func Authenticate(db *gorm.DB, username, password string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "user_username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Invalid username or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(password)); err != nil {
		return nil, errors.New("Invalid username or password")
	}
	return &user, nil
}

// IssueToken menerbitkan JWT berisi identitas user.
func IssueToken(user *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
