package util

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost bcrypt cost for account passwords
// passwordHashCost 账户密码的 bcrypt 代价因子
const passwordHashCost = 10

// GeneratePasswordHash generates bcrypt hash of an account password
// GeneratePasswordHash 生成账户密码的 bcrypt 哈希值
func GeneratePasswordHash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(bytes), err
}

// CheckPasswordHash verifies whether the login password matches the stored hash
// CheckPasswordHash 验证登录密码与存储的哈希值是否匹配
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
