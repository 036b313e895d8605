package asset

import (
	"embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// The scheme for resources compiled into the binary.
const BuiltinScheme = "builtin"

//go:embed shaders
var builtinFS embed.FS

// The Resource class wraps a streamable file or remote Resource.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme == "http" || r.url.Scheme == "https"
}

// Returns true if the Resource is embedded in the binary.
func (r *Resource) IsBuiltin() bool {
	return r.url.Scheme == BuiltinScheme
}

// Create a new Resource data stream. If relTo is specified and pathToResource
// does not define a scheme, then the path to the new Resource will be generated
// by concatenating the base path of relTo and pathToResource.
//
// This function can handle http/https URLs by delegating to the net/http
// package and builtin:// URLs by reading the sources embedded in the binary.
// The caller must make sure to close the returned io.ReadCloser to prevent mem leaks.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	// Replace forward slashes with backslaces and try parsing as a URL
	resURL, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	// If this is a relative url, clone parent url and adjust its path
	if resURL.Scheme == "" && relTo != nil {
		relPath := resURL.Path
		resURL, _ = url.Parse(relTo.url.String())
		prefix := resURL.Path
		if resURL.Scheme == "" {
			prefix, err = filepath.Abs(relTo.url.String())
			if err != nil {
				return nil, fmt.Errorf("resource: could not detect abs path for %s; %s", relTo.url.String(), err.Error())
			}
		}
		resURL.Path = path.Dir(filepath.ToSlash(prefix)) + "/" + relPath
	}

	var reader io.ReadCloser
	switch resURL.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(resURL.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := http.Get(resURL.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", resURL.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", resURL.String(), resp.StatusCode)
		}
		reader = resp.Body
	case BuiltinScheme:
		reader, err = builtinFS.Open(builtinPath(resURL))
		if err != nil {
			return nil, fmt.Errorf("resource: unknown builtin resource '%s'", resURL.String())
		}
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", resURL.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        resURL,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	resURL, _ := url.Parse(name)
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        resURL,
	}
}

// Read the entire contents of the resource at pathToResource.
func ReadAll(pathToResource string, relTo *Resource) (string, error) {
	res, err := NewResource(pathToResource, relTo)
	if err != nil {
		return "", err
	}
	defer res.Close()

	data, err := io.ReadAll(res)
	if err != nil {
		return "", fmt.Errorf("resource: could not read '%s': %s", res.Path(), err)
	}
	return string(data), nil
}

// Builtin URLs have the form builtin://shaders/name; the host is the top
// level folder of the embedded tree.
func builtinPath(u *url.URL) string {
	return strings.TrimPrefix(path.Clean(u.Host+"/"+u.Path), "/")
}
