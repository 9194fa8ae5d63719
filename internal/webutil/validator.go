package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"email":          "Email",
	"password":       "Password",
	"name":           "Name",
	"word":           "Word",
	"words":          "Words",
	"language":       "Language",
	"translation":    "Translation",
	"sourceLanguage": "Source language",
	"targetLanguage": "Target language",
	"date":           "Date",
	"selectedDate":   "Selected date",
	"score":          "Score",
	"answers":        "Answers",
}

func displayName(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別メッセージの上書き
	override := func(tag, msg string, withParam bool) {
		err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			var t string
			if withParam {
				t, _ = ut.T(tag, displayName(fe), fe.Param())
			} else {
				t, _ = ut.T(tag, displayName(fe))
			}
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	override("required", "{0} is required", false)
	override("email", "Invalid email address", false)
	override("oneof", "{0} must be one of [{1}]", true)
	override("datetime", "{0} must be a date in YYYY-MM-DD format", false)

	// min / max は文字列とそれ以外で単位を変える
	for _, tag := range []string{"min", "max"} {
		tag := tag
		err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-string", "{0} must be "+boundWord(tag)+" {1} characters", true); err != nil {
				return err
			}
			return ut.Add(tag+"-other", "{0} must be "+boundWord(tag)+" {1}", true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-other"
			if fe.Kind() == reflect.String {
				key = tag + "-string"
			}
			t, _ := ut.T(key, displayName(fe), fe.Param())
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}

func boundWord(tag string) string {
	if tag == "min" {
		return "at least"
	}
	return "at most"
}
