package repositories

import (
	"ZomatoBackend/models"
	"errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"regexp"
)

var usernamePattern = regexp.MustCompile("^[a-zA-Z0-9_]+$")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// 檢查使用者名稱是否合法
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 50 {
		return newValidationError("使用者名稱長度必須介於3至50個字元")
	}
	if !usernamePattern.MatchString(username) {
		return newValidationError("使用者名稱只能包含英文字母、數字和底線")
	}
	return nil
}

// 檢查密碼是否合法
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return newValidationError("密碼長度至少需要6個字元")
	}
	return nil
}

// 註冊新使用者，密碼以bcrypt雜湊後儲存
func (r *UserRepository) Create(username, password string) (*models.User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	//檢查使用者名稱是否重複
	existing, err := r.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// 以使用者名稱查詢，查無此人時回傳nil
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// 以ID查詢，查無此人時回傳nil
func (r *UserRepository) GetByID(userID uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// 驗證帳號密碼，失敗時一律回傳nil
// 不區分帳號不存在或密碼錯誤，避免洩漏帳號是否存在
func (r *UserRepository) Authenticate(username, password string) (*models.User, error) {
	user, err := r.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil
	}

	return user, nil
}

type UserSummary struct {
	ID       uint
	Username string
}

// 查詢所有使用者的ID和名稱
func (r *UserRepository) GetAllUsers() ([]UserSummary, error) {
	var users []UserSummary
	err := r.db.
		Model(&models.User{}).
		Select("id", "username").
		Order("id").
		Scan(&users).
		Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
