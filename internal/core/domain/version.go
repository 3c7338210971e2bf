package domain

import (
	"mime"
	"strings"
)

type APIVersion string

const (
	V1 APIVersion = "v1"
	V2 APIVersion = "v2"

	DefaultVersion = V1
)

func (v APIVersion) Supported() bool {
	return v == V1 || v == V2
}

// ParseAcceptVersion reads the "version" parameter of an Accept header such as
// "application/json; version=v2". No parameter selects DefaultVersion.
func ParseAcceptVersion(accept string) (APIVersion, error) {
	for _, part := range strings.Split(accept, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		_, params, err := mime.ParseMediaType(part)
		if err != nil {
			continue
		}
		raw, ok := params["version"]
		if !ok {
			continue
		}
		v := APIVersion(raw)
		if !v.Supported() {
			return "", &NotAcceptableError{Message: `Invalid version in "Accept" header.`}
		}
		return v, nil
	}
	return DefaultVersion, nil
}
