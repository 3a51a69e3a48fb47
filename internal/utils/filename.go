package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_.\-\x{4e00}-\x{9fff}]+`)

// SanitizeFilename 清洗用户提交的文件名，仅用于展示。
//
// 去除目录部分，替换不安全字符为下划线，折叠首尾的点与下划线。
// 实际落盘的文件名由 uuid 生成，与该结果无关。
func SanitizeFilename(name string) string {
	// 同时按两种分隔符取末段，浏览器可能提交 Windows 风格路径
	name = name[strings.LastIndexByte(name, '/')+1:]
	name = name[strings.LastIndexByte(name, '\\')+1:]
	name = filepath.Base(name)

	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")

	if name == "" {
		return "unnamed"
	}
	return name
}
