package helper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"wedding_invitation/model"
)

var trailingNumber = regexp.MustCompile(`\s+\d+$`)

// CleanName bỏ khoảng trắng thừa và số timestamp ở cuối tên (form phía
// client có thể gắn thêm để tránh trùng).
func CleanName(name string) string {
	return strings.TrimSpace(trailingNumber.ReplaceAllString(strings.TrimSpace(name), ""))
}

// WeddingSlug là "<cô dâu>-<chú rể>" đã bỏ dấu.
func WeddingSlug(groomName, brideName string) string {
	parts := make([]string, 0, 2)
	for _, name := range []string{brideName, groomName} {
		if s := slug.Make(CleanName(name)); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "thiep-cuoi"
	}
	return strings.Join(parts, "-")
}

func GenerateUniqueWeddingSlug(tx *gorm.DB, groomName, brideName string) (string, error) {
	base := WeddingSlug(groomName, brideName)
	result := base
	i := 1

	for {
		var count int64
		if err := tx.Model(&model.WeddingInvitation{}).
			Where("slug = ?", result).
			Count(&count).Error; err != nil {
			return "", fmt.Errorf("check slug %s: %w", result, err)
		}

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result, nil
}
