// Package i18n 提供国际化支持
// 负责管理应用程序的语言包和翻译功能
package i18n

import (
	"sync"

	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/weiwangfds/notestore/internal/logger"
	"golang.org/x/text/language"
)

// 支持的语言
const (
	LangZhCN = "zh-CN"
	LangEnUS = "en-US"
)

// supportedLangs 与 matcher 中的标签一一对应
var supportedLangs = []string{LangEnUS, LangZhCN}

var matcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.MustParse(LangZhCN),
})

var (
	instance *I18n
	once     sync.Once

	// 语言包存储
	// en-US 的文本即接口返回的原文，客户端依赖这些字符串
	translations = map[string]map[string]string{
		LangEnUS: {
			"created": "Created",
			"updated": "Updated",
			"deleted": "Deleted",

			"internal_server_error": "Server error",
			"invalid_params":        "Invalid parameters",
			"missing_fields":        "Missing note_name or note",
			"invalid_note_name":     "Invalid note name",
			"note_not_found":        "Not found",
			"note_already_exists":   "Note already exists",
			"note_write_failed":     "Server error",
			"note_list_failed":      "Server error",

			"unknown_error": "Unknown error",
		},
		LangZhCN: {
			"created": "已创建",
			"updated": "已更新",
			"deleted": "已删除",

			"internal_server_error": "服务器错误",
			"invalid_params":        "参数错误",
			"missing_fields":        "缺少 note_name 或 note",
			"invalid_note_name":     "笔记名称无效",
			"note_not_found":        "未找到",
			"note_already_exists":   "笔记已存在",
			"note_write_failed":     "服务器错误",
			"note_list_failed":      "服务器错误",

			"unknown_error": "未知错误",
		},
	}
)

// I18n 国际化管理器
type I18n struct {
	translators map[string]ut.Translator
	mu          sync.RWMutex
	defaultLang string
}

// GetInstance 获取I18n单例
func GetInstance() *I18n {
	once.Do(func() {
		instance = &I18n{
			translators: make(map[string]ut.Translator),
			defaultLang: LangEnUS,
		}
		instance.initTranslators()
	})
	return instance
}

// initTranslators 初始化翻译器
func (i *I18n) initTranslators() {
	enUS := en_US.New()
	zhCN := zh.New()
	uni := ut.New(enUS, enUS, zhCN)

	// 注册支持的语言 - 使用locale库的标识符
	langMappings := map[string]string{
		LangEnUS: "en_US",
		LangZhCN: "zh",
	}

	for ourLang, localeLang := range langMappings {
		trans, found := uni.GetTranslator(localeLang)
		if !found {
			logger.Errorf("初始化翻译器失败 for language %s (locale: %s): translator not found", ourLang, localeLang)
			continue
		}
		i.translators[ourLang] = trans
	}
}

// Translate 根据键和语言获取翻译
func (i *I18n) Translate(key, lang string) string {
	i.mu.RLock()
	defaultLang := i.defaultLang
	i.mu.RUnlock()

	if _, exists := i.translators[lang]; !exists {
		lang = defaultLang
	}

	if translation, found := translations[lang][key]; found {
		return translation
	}

	if lang != defaultLang {
		if translation, found := translations[defaultLang][key]; found {
			return translation
		}
	}

	logger.Warnf("未找到翻译: %s, 语言: %s", key, lang)
	return key
}

// SetDefaultLanguage 设置默认语言，不支持的语言被忽略
func (i *I18n) SetDefaultLanguage(lang string) {
	if !i.IsSupportedLanguage(lang) {
		logger.Warnf("不支持的默认语言: %s", lang)
		return
	}
	i.mu.Lock()
	i.defaultLang = lang
	i.mu.Unlock()
}

// GetDefaultLanguage 获取默认语言
func (i *I18n) GetDefaultLanguage() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.defaultLang
}

// IsSupportedLanguage 检查语言是否支持
func (i *I18n) IsSupportedLanguage(lang string) bool {
	_, exists := i.translators[lang]
	return exists
}

// MatchAcceptLanguage 按 Accept-Language 的权重选出支持的语言
// q=0 的语言不会被选中，没有匹配时返回默认语言
func (i *I18n) MatchAcceptLanguage(header string) string {
	if header == "" {
		return i.GetDefaultLanguage()
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return i.GetDefaultLanguage()
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return i.GetDefaultLanguage()
	}
	return supportedLangs[index]
}
