package helper

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatFileSize: 512 → "512 B", 2048 → "2.0 KB", kosong/0 → "-".
func FormatFileSize(bytes *int64) string {
	if bytes == nil || *bytes <= 0 {
		return "-"
	}
	n := *bytes
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// Initials: huruf pertama dua kata pertama, "?" untuk nama kosong.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}
	var b strings.Builder
	for i, w := range words {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

// InstagramHandle menormalkan "@diporani", " diporani " → "diporani".
func InstagramHandle(h string) string {
	return strings.TrimPrefix(strings.TrimSpace(h), "@")
}

func InstagramURL(h string) string {
	h = InstagramHandle(h)
	if h == "" {
		return ""
	}
	return "https://instagram.com/" + h
}

// Excerpt memotong teks di batas rune, menambah "…" kalau terpotong.
func Excerpt(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	rs := []rune(s)[:max]
	return strings.TrimSpace(string(rs)) + "…"
}

// FirstNonEmpty: nilai string pertama yang tidak kosong.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Deref untuk kolom nullable.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
