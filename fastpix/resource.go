package fastpix

import (
	"context"
	"maps"
	"net/url"
	"strings"
)

// pathParam is a required identifier substituted into an endpoint template.
type pathParam struct {
	key   string // placeholder name in the template, without braces
	label string // name used in error messages
}

var (
	mediaIDParam      = pathParam{key: "mediaId", label: "media ID"}
	streamIDParam     = pathParam{key: "streamId", label: "stream ID"}
	simulcastIDParam  = pathParam{key: "simulcastId", label: "simulcast ID"}
	playbackIDParam   = pathParam{key: "playbackId", label: "playback ID"}
	signingKeyIDParam = pathParam{key: "signingKeyId", label: "signing key ID"}
)

// endpoint describes one API operation.
type endpoint struct {
	method string
	path   string
	op     string
	params []pathParam
}

// resolve validates ids against the endpoint's required params and fills in
// the path template in a single pass, so an ID is never re-scanned for
// placeholders. ids are matched to params positionally.
func (e endpoint) resolve(ids ...string) (string, error) {
	if len(e.params) == 0 {
		return e.path, nil
	}
	pairs := make([]string, 0, 2*len(e.params))
	for i, p := range e.params {
		if i >= len(ids) || ids[i] == "" {
			return "", &ParamError{Op: e.op, Param: p.label}
		}
		pairs = append(pairs, "{"+p.key+"}", ids[i])
	}
	return strings.NewReplacer(pairs...).Replace(e.path), nil
}

// call validates, dispatches and annotates. It is the only path resource
// services use to reach the API.
func (c *Client) call(ctx context.Context, e endpoint, body Payload, query url.Values, ids ...string) (any, error) {
	path, err := e.resolve(ids...)
	if err != nil {
		return nil, err
	}

	result, err := c.Do(ctx, e.method, path, body, query)
	if err != nil {
		return nil, wrapOp(e.op, err)
	}
	return result, nil
}

// withDefaults returns a copy of payload with every key from defaults that
// payload does not already contain. Neither argument is modified.
func withDefaults(payload, defaults Payload) Payload {
	out := make(Payload, len(payload)+len(defaults))
	maps.Copy(out, payload)
	for k, v := range defaults {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}
