package convert

import (
	"strconv"
	"strings"
)

type StrTo string

func (s StrTo) String() string {
	return string(s)
}

func (s StrTo) Int() (int, error) {
	v, err := strconv.Atoi(s.String())
	return v, err
}

func (s StrTo) MustInt() int {
	v, _ := s.Int()
	return v
}

func (s StrTo) Int64() (int64, error) {
	v, err := strconv.ParseInt(s.String(), 10, 64)
	return v, err
}

func (s StrTo) MustInt64() int64 {
	v, _ := s.Int64()
	return v
}

// Bool 将字符串转换为布尔值，支持 1/0/true/false
func (s StrTo) Bool() (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s.String()))
}

func (s StrTo) MustBool() bool {
	v, _ := s.Bool()
	return v
}
