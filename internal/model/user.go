package model

// User 账号实体，整个所有权图的锚点
// 密码只存 bcrypt 哈希，任何接口都不回传
type User struct {
	UUIDModel
	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255;uniqueIndex;not null"` // 入库前统一转小写
	Password string `gorm:"size:255;not null" json:"-"`
	Avatar   string `gorm:"size:500"`

	// 关联关系（仅用于声明 RESTRICT 外键，业务代码不预加载）
	Stores    []Store    `gorm:"foreignKey:UserID"`
	Products  []Product  `gorm:"foreignKey:UserID"`
	Customers []Customer `gorm:"foreignKey:UserID"`
	Sales     []Sale     `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
