package util

import (
	"regexp"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// IsValidUsername verifies if the username format is correct
// IsValidUsername 验证用户名格式是否正确
// Username format: letters, numbers, underscores, length 3-20
// 用户名格式：字母、数字、下划线，长度3-20
func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// IsStrongPassword verifies the password strength policy
// IsStrongPassword 验证密码强度
// Policy: at least 8 characters, with upper, lower and digit
// 策略：至少 8 位，且包含大写字母、小写字母和数字
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	if !upperPattern.MatchString(password) {
		return false
	}
	if !lowerPattern.MatchString(password) {
		return false
	}
	return digitPattern.MatchString(password)
}
