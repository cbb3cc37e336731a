package emailalert

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
)

// extractHTMLPart walks a (possibly nested) MIME body and returns the
// largest text/html part, decoded. Non-multipart html bodies come back
// as-is; anything else yields "".
func extractHTMLPart(h mail.Header, body []byte) string {
	ct := h.Get("Content-Type")
	cte := strings.ToLower(strings.TrimSpace(h.Get("Content-Transfer-Encoding")))

	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	mediaType = strings.ToLower(mediaType)

	if strings.HasPrefix(mediaType, "text/html") {
		return string(decodeTransferEncoding(body, cte))
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		return ""
	}
	boundary := params["boundary"]
	if boundary == "" {
		return ""
	}

	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	var best string
	for {
		p, err := mr.NextPart()
		if err != nil {
			break
		}
		b, _ := io.ReadAll(io.LimitReader(p, 6<<20))

		partCTE := strings.ToLower(strings.TrimSpace(p.Header.Get("Content-Transfer-Encoding")))
		partMedia, _, _ := mime.ParseMediaType(p.Header.Get("Content-Type"))
		partMedia = strings.ToLower(partMedia)

		switch {
		case strings.HasPrefix(partMedia, "multipart/"):
			if inner := extractHTMLPart(mail.Header(p.Header), b); len(inner) > len(best) {
				best = inner
			}
		case strings.HasPrefix(partMedia, "text/html"):
			if s := string(decodeTransferEncoding(b, partCTE)); len(s) > len(best) {
				best = s
			}
		}
	}
	return best
}

func decodeTransferEncoding(b []byte, cte string) []byte {
	switch cte {
	case "base64":
		dec := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, 6<<20))
		return out
	case "quoted-printable":
		dec := quotedprintable.NewReader(bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, 6<<20))
		return out
	default:
		return b
	}
}
