package model

type Photo struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Filename   string `json:"filename" gorm:"not null"`               // 上传时的原始文件名（已清洗，仅用于展示）
	StoredName string `json:"stored_name" gorm:"not null;unique"`     // 磁盘与 URL 使用的唯一文件名 (uuid + 扩展名)
	Size       int64  `json:"size" gorm:"not null"`
	UploadedAt int64  `json:"uploaded_at" gorm:"not null;index"`
	UserID     uint   `json:"user_id" gorm:"not null;index"` // 上传者，删除权限以此为准
	User       User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Likes      []Like `json:"-"`
}
