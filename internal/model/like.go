package model

// Like 记录 "某用户点赞了某照片"。
// 联合唯一索引保证同一 (用户, 照片) 至多一条记录，兜底业务层的存在性检查。
type Like struct {
	ID      uint  `json:"id" gorm:"primaryKey"`
	UserID  uint  `json:"user_id" gorm:"not null;uniqueIndex:idx_user_photo"`
	PhotoID uint  `json:"photo_id" gorm:"not null;uniqueIndex:idx_user_photo"`
	User    User  `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Photo   Photo `gorm:"foreignKey:PhotoID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
