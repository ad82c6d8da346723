package utils

import "golang.org/x/crypto/bcrypt"

// ==================== 密码哈希 ====================

// HashPassword 生成 bcrypt 哈希
// 结果自带算法/代价因子/盐，校验时不需要额外参数
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 常数时间比对
// 哈希损坏（存储被污染）按校验失败处理，不崩溃
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
