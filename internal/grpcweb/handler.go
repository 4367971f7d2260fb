// Package grpcweb relays grpc-web requests from browsers to the practice gRPC
// server. Both the binary (application/grpc-web+json) and the base64 text
// (application/grpc-web-text+json) encodings are accepted; the reply uses the
// encoding of the request.
package grpcweb

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"dental-practice-api/internal/middleware"
	"dental-practice-api/internal/wire"
)

const (
	binaryType = "application/grpc-web+" + wire.Name
	textType   = "application/grpc-web-text+" + wire.Name

	flagData    byte = 0x00
	flagTrailer byte = 0x80
	headerLen        = 5

	maxBody = 4 << 20
)

var (
	errShortBody  = errors.New("body too short")
	errIncomplete = errors.New("incomplete frame")
)

type Bridge struct {
	conn *grpc.ClientConn
	log  *zap.Logger
}

// New dials the gRPC server at addr (e.g. "localhost:50051"). Extra dial
// options are appended after the insecure transport credentials.
func New(addr string, log *zap.Logger, opts ...grpc.DialOption) (*Bridge, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	return &Bridge{conn: conn, log: log}, nil
}

func (b *Bridge) Close() { _ = b.conn.Close() }

func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(b.serve)
}

func allowCORS(h http.Header, origin string) {
	if origin == "" {
		origin = "*"
	}
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, X-Grpc-Web, X-User-Agent, X-Request-Id")
	h.Set("Access-Control-Expose-Headers", "Grpc-Status, Grpc-Message")
	h.Set("Access-Control-Max-Age", "86400")
}

func (b *Bridge) serve(w http.ResponseWriter, r *http.Request) {
	allowCORS(w.Header(), r.Header.Get("Origin"))

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var out reply
	switch ct := r.Header.Get("Content-Type"); {
	case strings.HasPrefix(ct, textType):
		out = reply{w: w, text: true}
	case strings.HasPrefix(ct, binaryType):
		out = reply{w: w}
	default:
		http.Error(w, "expected "+binaryType+" or "+textType, http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		out.fail(codes.Internal, "read body failed")
		return
	}
	if out.text {
		if body, err = base64.StdEncoding.DecodeString(strings.TrimSpace(string(body))); err != nil {
			out.fail(codes.InvalidArgument, "body is not base64")
			return
		}
	}
	_, payload, err := readFrame(body)
	if err != nil {
		out.fail(codes.InvalidArgument, err.Error())
		return
	}

	md := metadata.Pairs(middleware.ForwardedForKey, clientHost(r.RemoteAddr))
	if ids := r.Header.Values("X-Request-Id"); len(ids) > 0 {
		md.Set("x-request-id", ids...)
	}
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	b.log.Debug("grpc-web call", zap.String("method", r.URL.Path), zap.Bool("text", out.text))
	resp := &rawMsg{}
	if err := b.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{})); err != nil {
		st := status.Convert(err)
		b.log.Debug("grpc-web call failed", zap.String("method", r.URL.Path),
			zap.Stringer("code", st.Code()), zap.String("message", st.Message()))
		out.fail(st.Code(), st.Message())
		return
	}
	out.send(frame(flagData, resp.data), trailer(codes.OK, ""))
}

// clientHost drops the port from an HTTP remote address.
func clientHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// readFrame splits the first length-prefixed message off body.
func readFrame(body []byte) (flag byte, payload []byte, err error) {
	if len(body) < headerLen {
		return 0, nil, errShortBody
	}
	n := binary.BigEndian.Uint32(body[1:headerLen])
	if uint64(n) > uint64(len(body)-headerLen) {
		return 0, nil, errIncomplete
	}
	return body[0], body[headerLen : headerLen+int(n)], nil
}

func frame(flag byte, payload []byte) []byte {
	f := make([]byte, headerLen+len(payload))
	f[0] = flag
	binary.BigEndian.PutUint32(f[1:headerLen], uint32(len(payload)))
	copy(f[headerLen:], payload)
	return f
}

func trailer(code codes.Code, msg string) []byte {
	var t strings.Builder
	fmt.Fprintf(&t, "grpc-status:%d\r\n", code)
	if msg != "" {
		fmt.Fprintf(&t, "grpc-message:%s\r\n", encodeMessage(msg))
	}
	return frame(flagTrailer, []byte(t.String()))
}

// encodeMessage percent-encodes msg for the grpc-message trailer: bytes
// outside printable ASCII and '%' itself are escaped.
func encodeMessage(msg string) string {
	var b strings.Builder
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c >= ' ' && c <= '~' && c != '%' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

// reply writes grpc-web frames, base64 encoded in text mode. The HTTP status
// is always 200; the outcome travels in the trailer frame.
type reply struct {
	w    http.ResponseWriter
	text bool
}

func (r reply) send(frames ...[]byte) {
	body := bytes.Join(frames, nil)
	ct := binaryType
	if r.text {
		ct = textType
		body = []byte(base64.StdEncoding.EncodeToString(body))
	}
	r.w.Header().Set("Content-Type", ct)
	r.w.WriteHeader(http.StatusOK)
	_, _ = r.w.Write(body)
}

func (r reply) fail(code codes.Code, msg string) {
	r.send(trailer(code, msg))
}

type rawMsg struct{ data []byte }

// rawCodec relays message bytes untouched. It reports the JSON subtype so the
// server decodes them with the registered JSON codec.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) { return v.(*rawMsg).data, nil }

func (rawCodec) Unmarshal(data []byte, v any) error {
	v.(*rawMsg).data = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string { return wire.Name }
