package service

import (
	"errors"
	"log"
	"photo-wall-server/internal/db"
	"photo-wall-server/internal/model"
	"photo-wall-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrUsernameTaken 注册时用户名已存在
var ErrUsernameTaken = errors.New("用户名已存在")

// RegisterUser 创建新用户，密码以 bcrypt 哈希存储。
// 返回用户不可见的校验信息时，msg 非空且 err 为 nil。
func RegisterUser(username, password string) (msg string, err error) {
	if ok, m := utils.ValidateUsername(username); !ok {
		return m, nil
	}
	if password == "" {
		return "密码不能为空", nil
	}

	var count int64
	if err := db.DB.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		log.Printf("Register count error: %v\n", err)
		return "", errors.New("系统错误: 查询用户失败")
	}
	if count > 0 {
		return "", ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register hash error: %v\n", err)
		return "", errors.New("系统错误: 密码处理失败")
	}

	user := model.User{Username: username, Password: string(hashed)}
	if err := db.DB.Create(&user).Error; err != nil {
		// 并发注册时唯一索引可能先于存在性检查命中
		log.Printf("Register create error: %v\n", err)
		return "", ErrUsernameTaken
	}

	return "", nil
}

// 用户不存在时拿它做一次假比较，抹平与密码错误路径的响应时间差
var dummyPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthenticateUser 校验用户名与密码，成功返回用户。
// 用户名不存在与密码错误返回同一个错误，两条路径都走一次 bcrypt 比较。
func AuthenticateUser(username, password string) (*model.User, error) {
	var user model.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Login query error: %v\n", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
		return nil, errors.New("用户名或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("用户名或密码错误")
	}

	return &user, nil
}
