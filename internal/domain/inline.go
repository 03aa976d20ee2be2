package domain

import "strings"

// ParseInline reads a "SESSDATA=...; bili_jct=..." string. Keys are
// case-insensitive; the result is absent unless SESSDATA is non-empty.
func ParseInline(text string) (Credential, bool) {
	values := make(map[string]string)
	for _, part := range strings.Split(text, ";") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			continue
		}
		values[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	sessData := values[strings.ToLower(SessDataCookie)]
	if sessData == "" {
		return Credential{}, false
	}

	return Credential{SessData: sessData, BiliJct: values[strings.ToLower(BiliJctCookie)]}, true
}

func FormatInline(sessData, biliJct string) string {
	if biliJct == "" {
		return SessDataCookie + "=" + sessData
	}
	return SessDataCookie + "=" + sessData + "; " + BiliJctCookie + "=" + biliJct
}
