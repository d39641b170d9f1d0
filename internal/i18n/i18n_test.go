package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogComplete(t *testing.T) {
	for key := range translations[LangEnUS] {
		_, ok := translations[LangZhCN][key]
		assert.True(t, ok, "zh-CN 缺少 %s", key)
	}
	assert.Len(t, translations[LangZhCN], len(translations[LangEnUS]))
}

func TestTranslate(t *testing.T) {
	i := GetInstance()

	assert.Equal(t, "Created", i.Translate("created", LangEnUS))
	assert.Equal(t, "已创建", i.Translate("created", LangZhCN))
	assert.Equal(t, "Created", i.Translate("created", "ja-JP"))
	assert.Equal(t, "no_such_key", i.Translate("no_such_key", LangEnUS))
}

func TestMatchAcceptLanguage(t *testing.T) {
	i := GetInstance()

	tests := []struct {
		header string
		want   string
	}{
		{"", LangEnUS},
		{"zh-CN,zh;q=0.9", LangZhCN},
		{"zh", LangZhCN},
		{"fr-FR, en;q=0.5", LangEnUS},
		{"EN-us", LangEnUS},
		{"fr-FR", LangEnUS},
		{"en;q=0.1, zh-CN;q=0.9", LangZhCN},
		{"zh-CN;q=0, en-US", LangEnUS},
		{"zh-CN;q=0", LangEnUS},
		{"fr;q=0.9, zh;q=0.5, en;q=0.4", LangZhCN},
		{"not a language tag!!", LangEnUS},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, i.MatchAcceptLanguage(tt.header), tt.header)
	}
}

func TestSetDefaultLanguage(t *testing.T) {
	i := GetInstance()
	t.Cleanup(func() { i.SetDefaultLanguage(LangEnUS) })

	i.SetDefaultLanguage("fr-FR")
	assert.Equal(t, LangEnUS, i.GetDefaultLanguage())

	i.SetDefaultLanguage(LangZhCN)
	assert.Equal(t, LangZhCN, i.GetDefaultLanguage())
	assert.Equal(t, "未找到", i.Translate("note_not_found", "fr-FR"))
	assert.True(t, i.IsSupportedLanguage(LangZhCN))
	assert.False(t, i.IsSupportedLanguage("fr-FR"))
}
