package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mapbook/config"
	apimiddleware "mapbook/internal/delivery/api/middleware"
	"mapbook/internal/delivery/api/router"
	"mapbook/internal/delivery/api/router/handler"
	"mapbook/internal/infra/auth"
	"mapbook/internal/infra/persistence/memory"
	"mapbook/internal/infra/pubsub"
	"mapbook/internal/infra/qrcode"
	"mapbook/internal/infra/storage"
	"mapbook/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

type apiFixture struct {
	echo    *echo.Echo
	authCfg *config.AuthConfig
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
	} `json:"meta"`
}

type addressBody struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	IsPublic bool    `json:"isPublic"`
	User     string  `json:"user"`
	Latitude float64 `json:"latitude"`
}

func createTestAPI(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Auth:       &config.AuthConfig{Provider: "jwt", JWTSecret: "test_secret_key_very_long_for_testing"},
		Storage:    &config.StorageConfig{PublicBaseURL: "https://cdn.example.com", SignedURLExpiry: time.Minute},
		Visibility: &config.VisibilityConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	store := memory.NewStore()
	addressRepo := memory.NewAddressRepository(store)

	verifier, err := auth.NewJWTVerifier(cfg.Auth)
	require.NoError(t, err)

	events, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Lc: fxtest.NewLifecycle(t), Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)

	qrcodes, err := qrcode.NewQRCodeService(128, "M", "mapbook://map")
	require.NoError(t, err)

	blobs := storage.NewBucketStorage(memblob.OpenBucket(nil), cfg.Storage.PublicBaseURL, "")
	t.Cleanup(func() { _ = blobs.Close() })

	profiles := impl.NewProfileService(impl.ProfileServiceParams{ProfileRepo: memory.NewProfileRepository(store), Logger: logger})
	resolver := impl.NewVisibilityResolver(impl.VisibilityResolverParams{AddressRepo: addressRepo, Config: cfg, Logger: logger})
	addresses := impl.NewAddressService(impl.AddressServiceParams{
		AddressRepo: addressRepo,
		Resolver:    resolver,
		Profiles:    profiles,
		Blobs:       blobs,
		Events:      events,
		QRCodes:     qrcodes,
		Config:      cfg,
		Logger:      logger,
	})
	comments := impl.NewCommentService(impl.CommentServiceParams{
		CommentRepo: memory.NewCommentRepository(store),
		Addresses:   addresses,
		Events:      events,
		Logger:      logger,
	})

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: addresses, Logger: logger}),
			CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: comments, Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profiles, AddressUC: addresses}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(verifier),
		},
	})

	return &apiFixture{echo: e, authCfg: cfg.Auth}
}

func (f *apiFixture) token(t *testing.T, email string) string {
	t.Helper()

	token, err := auth.IssueToken(f.authCfg, "uid-"+strings.Split(email, "@")[0], email, time.Hour)
	require.NoError(t, err)

	return token
}

func (f *apiFixture) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeAddresses(t *testing.T, rec *httptest.ResponseRecorder) []addressBody {
	t.Helper()

	var addresses []addressBody
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &addresses))

	return addresses
}

func (f *apiFixture) createAddress(t *testing.T, token, body string) addressBody {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/v1/addresses", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var address addressBody
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &address))

	return address
}

func TestAPI_Health(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, rec.Header().Get("X-Request-Id"), decode(t, rec).Meta.RequestID)
}

func TestAPI_VisibleAddresses(t *testing.T) {
	f := createTestAPI(t)
	alice, bob := f.token(t, "Alice@Example.com"), f.token(t, "bob@example.com")

	home := f.createAddress(t, alice, `{"name":"Home","latitude":25.03,"longitude":121.56}`)
	cafe := f.createAddress(t, bob, `{"name":"Cafe","latitude":35.68,"longitude":139.76,"isPublic":true}`)
	f.createAddress(t, bob, `{"name":"Bob's flat","latitude":35.7,"longitude":139.7}`)
	assert.Equal(t, "alice@example.com", home.User)

	rec := f.do(t, http.MethodGet, "/api/v1/addresses", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	ids := []string{}
	for _, address := range decodeAddresses(t, rec) {
		ids = append(ids, address.ID)
	}
	assert.ElementsMatch(t, []string{home.ID, cafe.ID}, ids)

	rec = f.do(t, http.MethodGet, "/api/v1/addresses?bbox=120,20,125,30", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	inView := decodeAddresses(t, rec)
	require.Len(t, inView, 1)
	assert.Equal(t, home.ID, inView[0].ID)

	rec = f.do(t, http.MethodGet, "/api/v1/addresses", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `[]`, string(env.Data))
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 0, *env.Meta.Count)
}

func TestAPI_PrivateAndOwnedLists(t *testing.T) {
	f := createTestAPI(t)
	alice := f.token(t, "alice@example.com")

	f.createAddress(t, alice, `{"name":"Home","latitude":1,"longitude":1}`)
	f.createAddress(t, alice, `{"name":"Park","latitude":2,"longitude":2,"isPublic":true}`)

	assert.Len(t, decodeAddresses(t, f.do(t, http.MethodGet, "/api/v1/addresses/private", alice, "")), 1)
	assert.Len(t, decodeAddresses(t, f.do(t, http.MethodGet, "/api/v1/addresses/mine", alice, "")), 2)
	assert.Len(t, decodeAddresses(t, f.do(t, http.MethodGet, "/api/v1/addresses/public", alice, "")), 1)

	rec := f.do(t, http.MethodGet, "/api/v1/addresses/private", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, rec).Error.Code)
}

func TestAPI_Errors(t *testing.T) {
	f := createTestAPI(t)
	alice := f.token(t, "alice@example.com")

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		body     string
		wantCode int
		wantErr  string
	}{
		{"Bad bbox", http.MethodGet, "/api/v1/addresses?bbox=1,2,3", alice, "", http.StatusBadRequest, "INVALID_BOUNDS"},
		{"Inverted bbox", http.MethodGet, "/api/v1/addresses?bbox=10,10,0,0", alice, "", http.StatusBadRequest, "INVALID_BOUNDS"},
		{"Garbage token", http.MethodGet, "/api/v1/addresses", "nope", "", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"Create anonymously", http.MethodPost, "/api/v1/addresses", "", `{"name":"x"}`, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"Create without name", http.MethodPost, "/api/v1/addresses", alice, `{"latitude":1,"longitude":1}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"Unknown address", http.MethodGet, "/api/v1/addresses/missing", alice, "", http.StatusNotFound, "ADDRESS_NOT_FOUND"},
		{"Upload for unknown kind", http.MethodPost, "/api/v1/uploads", alice, `{"kind":"video"}`, http.StatusBadRequest, "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestAPI_DeleteOwnership(t *testing.T) {
	f := createTestAPI(t)
	alice, bob := f.token(t, "alice@example.com"), f.token(t, "bob@example.com")

	shared := f.createAddress(t, alice, `{"name":"Cafe","latitude":1,"longitude":1,"isPublic":true}`)
	private := f.createAddress(t, alice, `{"name":"Home","latitude":1,"longitude":1}`)

	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodDelete, "/api/v1/addresses/"+shared.ID, bob, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/api/v1/addresses/"+private.ID, bob, "").Code)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/v1/addresses/"+shared.ID, alice, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/v1/addresses/"+shared.ID, alice, "").Code)
}

func TestAPI_Comments(t *testing.T) {
	f := createTestAPI(t)
	alice, bob := f.token(t, "alice@example.com"), f.token(t, "bob@example.com")
	cafe := f.createAddress(t, alice, `{"name":"Cafe","latitude":1,"longitude":1,"isPublic":true}`)
	home := f.createAddress(t, alice, `{"name":"Home","latitude":1,"longitude":1}`)

	rec := f.do(t, http.MethodPost, "/api/v1/addresses/"+cafe.ID+"/comments", bob, `{"text":"Great coffee","rating":"4 stars"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/api/v1/addresses/"+cafe.ID+"/comments", bob, `{"text":"Too good","rating":"9"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RATING", decode(t, rec).Error.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/addresses/"+home.ID+"/comments", bob, `{"text":"Snooping"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/addresses/"+cafe.ID+"/comments", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []struct {
		Text   string `json:"text"`
		Rating int    `json:"rating"`
		User   string `json:"user"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, 4, comments[0].Rating)
	assert.Equal(t, "bob@example.com", comments[0].User)
}

func TestAPI_ShareQRAndGeoJSON(t *testing.T) {
	f := createTestAPI(t)
	alice := f.token(t, "alice@example.com")
	home := f.createAddress(t, alice, `{"name":"Home","latitude":25.03,"longitude":121.56}`)

	rec := f.do(t, http.MethodGet, "/api/v1/addresses/"+home.ID+"/qr", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes()[:4])

	rec = f.do(t, http.MethodGet, "/api/v1/addresses/geojson", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, home.ID, fc.Features[0].ID)
	assert.Equal(t, []float64{121.56, 25.03}, fc.Features[0].Geometry.Coordinates)
}

func TestAPI_ProfileAndUploads(t *testing.T) {
	f := createTestAPI(t)
	alice := f.token(t, "alice@example.com")

	rec := f.do(t, http.MethodGet, "/api/v1/profile", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"alice@example.com","avatarUrl":""}`, string(decode(t, rec).Data))

	rec = f.do(t, http.MethodPut, "/api/v1/profile/avatar", alice, `{"avatarUrl":"https://cdn.example.com/avatars/uid-alice.jpg"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/profile", alice, "")
	assert.JSONEq(t, `{"email":"alice@example.com","avatarUrl":"https://cdn.example.com/avatars/uid-alice.jpg"}`, string(decode(t, rec).Data))

	rec = f.do(t, http.MethodPost, "/api/v1/uploads", alice, `{"kind":"avatar"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var slot struct {
		Key       string `json:"key"`
		PublicURL string `json:"publicUrl"`
		UploadURL string `json:"uploadUrl"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &slot))
	assert.Equal(t, "avatars/uid-alice.jpg", slot.Key)
	assert.Equal(t, "https://cdn.example.com/avatars/uid-alice.jpg", slot.PublicURL)
	assert.Empty(t, slot.UploadURL)
}
