package httpclient

import "net/http"

// MergeHeaders folds the layers left to right. On a key collision the later
// layer wins; keys are compared in canonical form.
func MergeHeaders(layers ...map[string]string) http.Header {
	merged := make(http.Header)

	for _, layer := range layers {
		for k, v := range layer {
			merged.Set(k, v)
		}
	}

	return merged
}

func defaultHeaders(token string) map[string]string {
	return map[string]string{
		HeaderAccept:        ContentTypeJSON,
		HeaderContentType:   ContentTypeJSONUTF8,
		HeaderAuthorization: "Bearer " + token,
	}
}
