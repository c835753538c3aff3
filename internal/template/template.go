// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package template

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wneessen/city-weather/internal/config"
)

// Templates holds the parsed output templates.
type Templates struct {
	Text      *template.Template
	humanizer *humanize.Humanizer
	titler    cases.Caser
}

// optional is implemented by the vartype.Variable wrappers of optional report values.
type optional interface {
	IsSet() bool
	String() string
}

func New(conf *config.Config) (*Templates, error) {
	tpls := &Templates{
		humanizer: humanize.MustNew().CreateHumanizer(language.English),
		titler:    cases.Title(language.English),
	}

	tpl, err := template.New("text").Funcs(tpls.templateFuncMap()).Parse(conf.Templates.Text)
	if err != nil {
		return tpls, fmt.Errorf("failed to parse text template: %w", err)
	}
	tpls.Text = tpl

	return tpls, nil
}

// Render executes the text template with data.
func (t *Templates) Render(data any) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := t.Text.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to render text template: %w", err)
	}
	return buf.String(), nil
}

func (t *Templates) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"timeFormat":  timeFormat,
		"floatFormat": floatFormat,
		"decimal":     decimal,
		"humanTime":   t.humanTime,
		"title":       t.titler.String,
		"opt":         opt,
		"emojiPad":    EmojiWithSpace,
		"lc":          strings.ToLower,
		"uc":          strings.ToUpper,
	}
}

// humanTime renders val relative to now, e.g. "3 minutes ago" or "in 2 hours".
func (t *Templates) humanTime(val time.Time) string {
	if val.IsZero() {
		return "-"
	}
	return t.humanizer.NaturalTime(val)
}

func timeFormat(val time.Time, fmt string) string {
	if val.IsZero() {
		return "-"
	}
	return val.Format(fmt)
}

func floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Round(val*pow)/pow)
}

// decimal renders val with as many digits as needed and at least one decimal place.
func decimal(val float64) string {
	str := strconv.FormatFloat(val, 'f', -1, 64)
	if math.IsInf(val, 0) || math.IsNaN(val) || strings.Contains(str, ".") {
		return str
	}
	return str + ".0"
}

func opt(val optional, unit string) string {
	if !val.IsSet() {
		return val.String()
	}
	return val.String() + unit
}

// EmojiWithSpace pads emoji with spaces according to its terminal cell width, so that text
// after it lines up.
func EmojiWithSpace(emoji string) string {
	width := runewidth.StringWidth(emoji)
	return fmt.Sprintf("%s%s", emoji, strings.Repeat(" ", 3-min(width, 2)))
}
