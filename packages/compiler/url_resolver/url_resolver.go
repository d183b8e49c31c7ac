package url_resolver

import (
	"regexp"
	"strings"
)

// UrlResolver resolves a possibly relative URL against a base URL.
// Resolution is pure string manipulation; no I/O is performed.
type UrlResolver struct {
	packagePrefix *string
}

// NewUrlResolver creates a new UrlResolver. When packagePrefix is non-nil,
// "package:" URLs are rewritten to live under that prefix.
func NewUrlResolver(packagePrefix *string) *UrlResolver {
	return &UrlResolver{
		packagePrefix: packagePrefix,
	}
}

// CreateOfflineCompileUrlResolver creates a UrlResolver that maps
// "package:" URLs into the current directory.
func CreateOfflineCompileUrlResolver() *UrlResolver {
	prefix := "."
	return NewUrlResolver(&prefix)
}

var trailingSlashesRe = regexp.MustCompile(`/+$`)
var leadingSlashesRe = regexp.MustCompile(`^/+`)

// Resolve resolves url against baseUrl and returns the absolute form
func (r *UrlResolver) Resolve(baseUrl, url string) string {
	resolvedUrl := url
	if len(baseUrl) > 0 {
		resolvedUrl = resolveUrl(baseUrl, resolvedUrl)
	}
	resolvedParts := split(resolvedUrl)
	if r.packagePrefix != nil && resolvedParts != nil && resolvedParts.get(componentScheme) == "package" {
		path := resolvedParts.get(componentPath)
		prefix := trailingSlashesRe.ReplaceAllString(*r.packagePrefix, "")
		path = leadingSlashesRe.ReplaceAllString(path, "")
		return prefix + "/" + path
	}
	return resolvedUrl
}

// URL component indexes into the split regexp's submatches.
const (
	componentScheme = iota + 1
	componentUserInfo
	componentDomain
	componentPort
	componentPath
	componentQueryData
	componentFragment
)

// splitRe matches a URL into scheme, userInfo, domain, port, path, query and
// fragment components. Derived from the WHATWG URL grammar the way the
// original WebComponents polyfill did it.
var splitRe = regexp.MustCompile(
	`^` +
		`(?:` +
		`([^:/?#.]+)` + // scheme
		`:)?` +
		`(?://` +
		`(?:([^/?#]*)@)?` + // userInfo
		`([\w\-\x{0100}-\x{fffe}.%]*)` + // domain
		`(?::([0-9]+))?` + // port
		`)?` +
		`([^?#]+)?` + // path
		`(?:\?([^#]*))?` + // query
		`(?:#(.*))?` + // fragment
		`$`)

// urlParts holds the submatches of splitRe; a nil entry means the component
// was absent, which is distinct from an empty one.
type urlParts struct {
	parts [8]*string
}

func (u *urlParts) has(index int) bool {
	return u.parts[index] != nil
}

func (u *urlParts) get(index int) string {
	if u.parts[index] == nil {
		return ""
	}
	return *u.parts[index]
}

func (u *urlParts) set(index int, value *string) {
	u.parts[index] = value
}

func split(url string) *urlParts {
	m := splitRe.FindStringSubmatchIndex(url)
	if m == nil {
		return nil
	}
	result := &urlParts{}
	for i := componentScheme; i <= componentFragment; i++ {
		start, end := m[2*i], m[2*i+1]
		if start == -1 {
			continue
		}
		value := url[start:end]
		result.parts[i] = &value
	}
	return result
}

// joinAndCanonicalizePath serializes the parts back into a URL with dot
// segments removed from the path.
func joinAndCanonicalizePath(parts *urlParts) string {
	path := parts.get(componentPath)
	if path == "" {
		path = "/"
	}
	path = removeDotSegments(path)

	var sb strings.Builder
	if parts.has(componentScheme) {
		sb.WriteString(parts.get(componentScheme))
		sb.WriteString(":")
	}
	if parts.has(componentDomain) {
		sb.WriteString("//")
		if parts.has(componentUserInfo) {
			sb.WriteString(parts.get(componentUserInfo))
			sb.WriteString("@")
		}
		sb.WriteString(parts.get(componentDomain))
		if parts.has(componentPort) {
			sb.WriteString(":")
			sb.WriteString(parts.get(componentPort))
		}
	}
	sb.WriteString(path)
	if parts.has(componentQueryData) {
		sb.WriteString("?")
		sb.WriteString(parts.get(componentQueryData))
	}
	if parts.has(componentFragment) {
		sb.WriteString("#")
		sb.WriteString(parts.get(componentFragment))
	}
	return sb.String()
}

// removeDotSegments resolves "." and ".." segments without touching leading
// or trailing slashes.
func removeDotSegments(path string) string {
	if path == "/" {
		return "/"
	}
	leadingSlash := ""
	if strings.HasPrefix(path, "/") {
		leadingSlash = "/"
	}
	trailingSlash := ""
	if strings.HasSuffix(path, "/") {
		trailingSlash = "/"
	}
	segments := strings.Split(path, "/")

	var out []string
	up := 0
	for _, segment := range segments {
		switch segment {
		case "", ".":
			// skip
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			} else {
				up++
			}
		default:
			out = append(out, segment)
		}
	}
	if leadingSlash == "" {
		for ; up > 0; up-- {
			out = append([]string{".."}, out...)
		}
		if len(out) == 0 {
			out = append(out, ".")
		}
	}
	return leadingSlash + strings.Join(out, "/") + trailingSlash
}

func resolveUrl(base, url string) string {
	parts := split(url)
	if parts == nil {
		return url
	}
	baseParts := split(base)
	if baseParts == nil {
		return joinAndCanonicalizePath(parts)
	}
	if parts.has(componentScheme) {
		return joinAndCanonicalizePath(parts)
	}
	parts.set(componentScheme, baseParts.parts[componentScheme])

	for i := componentScheme; i <= componentPort; i++ {
		if !parts.has(i) {
			parts.set(i, baseParts.parts[i])
		}
	}

	if strings.HasPrefix(parts.get(componentPath), "/") {
		return joinAndCanonicalizePath(parts)
	}

	path := baseParts.get(componentPath)
	if path == "" {
		path = "/"
	}
	index := strings.LastIndex(path, "/")
	path = path[:index+1] + parts.get(componentPath)
	pathCopy := path
	parts.set(componentPath, &pathCopy)
	return joinAndCanonicalizePath(parts)
}
