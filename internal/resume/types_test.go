package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoConfigBorderRadiusValue(t *testing.T) {
	cases := []struct {
		name   string
		config PhotoConfig
		want   string
	}{
		{"none", PhotoConfig{BorderRadius: BorderRadiusNone}, "0"},
		{"medium", PhotoConfig{BorderRadius: BorderRadiusMedium}, "8px"},
		{"full", PhotoConfig{BorderRadius: BorderRadiusFull}, "50%"},
		{"custom", PhotoConfig{BorderRadius: BorderRadiusCustom, CustomBorderRadius: 12}, "12px"},
		{"unknown falls back to zero", PhotoConfig{BorderRadius: "wavy"}, "0"},
		{"empty falls back to zero", PhotoConfig{}, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.config.BorderRadiusValue())
		})
	}
}

func TestBasicInfoFieldValue(t *testing.T) {
	b := BasicInfo{
		Name:     "张三",
		Email:    "zhangsan@example.com",
		Location: "上海",
		Extra:    map[string]string{"wechat": "zs_888"},
	}

	assert.Equal(t, "张三", b.FieldValue("name"))
	assert.Equal(t, "zhangsan@example.com", b.FieldValue("email"))
	assert.Equal(t, "上海", b.FieldValue("location"))
	assert.Equal(t, "zs_888", b.FieldValue("wechat"))
	assert.Equal(t, "", b.FieldValue("missing"))
}

func TestVisiblePointerSemantics(t *testing.T) {
	hidden := false
	shown := true

	assert.True(t, Visible(nil), "缺省视为可见")
	assert.True(t, Visible(&shown))
	assert.False(t, Visible(&hidden))
}
