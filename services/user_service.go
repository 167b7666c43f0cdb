package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/models"
)

// Register creates a new account with role "user". Username and email must
// be globally unique; email uniqueness is case-insensitive.
func Register(db *gorm.DB, username, email, password string) (*models.User, error) {
	var existing models.User
	err := db.Where("username = ? OR LOWER(email) = ?", username, strings.ToLower(email)).
		First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("username or email %w", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies email + password. Unknown email and bad password are
// indistinguishable to the caller.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	err := db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser changes username and/or email, re-checking uniqueness against
// everyone else.
func UpdateUser(db *gorm.DB, id, username, email string) (*models.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}

	var clash models.User
	err = db.Where("id <> ? AND (username = ? OR LOWER(email) = ?)",
		id, user.Username, strings.ToLower(user.Email)).First(&clash).Error
	if err == nil {
		return nil, fmt.Errorf("username or email %w", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword requires the current password to match before re-hashing.
func ChangePassword(db *gorm.DB, id, oldPassword, newPassword string) error {
	user, err := GetUser(db, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Model(user).Update("password_hash", string(hash)).Error
}

// ChangeRole assigns a new role. Only "user" and "admin" can be assigned
// through this path; superadmin is never grantable over the API.
func ChangeRole(db *gorm.DB, id string, role models.Role) (*models.User, error) {
	if !role.Valid() || role == models.RoleSuperAdmin {
		return nil, ErrInvalidRole
	}
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Model(user).Update("role", role).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account and everything it owns in one transaction:
// cart items, favorites, orders and their lines.
func DeleteUser(db *gorm.DB, id string) error {
	if _, err := GetUser(db, id); err != nil {
		return err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("user_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	orderIDs := tx.Model(&models.Order{}).Select("id").Where("user_id = ?", id)
	if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
