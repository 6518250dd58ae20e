package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/postboard/internal/logger"
	"github.com/nkiryanov/postboard/internal/repository/memory"
	"github.com/nkiryanov/postboard/internal/service/auth"
	"github.com/nkiryanov/postboard/internal/service/auth/tokenmanager"
	"github.com/nkiryanov/postboard/internal/service/post"
)

const testSecret = "test-secret"

type testClient struct {
	t   *testing.T
	url string
}

// Run router with production services on in-memory storage
func newTestClient(t *testing.T) *testClient {
	t.Helper()

	storage := memory.NewStorage()

	tm, err := tokenmanager.New(tokenmanager.Config{SecretKey: testSecret})
	require.NoError(t, err)

	authService, err := auth.NewService(auth.Config{}, tm, storage.User())
	require.NoError(t, err)

	postService := post.NewService(storage.Post())

	srv := httptest.NewServer(NewRouter(authService, postService, logger.NewNoOpLogger(), nil))
	t.Cleanup(srv.Close)

	return &testClient{t: t, url: srv.URL}
}

// Send request and return status code, body and headers
// Empty token means no Authorization header
func (c *testClient) do(method string, path string, token string, body string) (int, string, http.Header) {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(c.t.Context(), method, c.url+path, reader)
	require.NoError(c.t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close() //nolint:errcheck

	b, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)

	return resp.StatusCode, string(b), resp.Header
}

func (c *testClient) register(username string, password string) {
	c.t.Helper()

	code, body, _ := c.do(http.MethodPost, "/register", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equalf(c.t, http.StatusCreated, code, "register failed: %s", body)
}

func (c *testClient) login(username string, password string) string {
	c.t.Helper()

	code, body, _ := c.do(http.MethodPost, "/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equalf(c.t, http.StatusOK, code, "login failed: %s", body)

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal([]byte(body), &res))
	require.NotEmpty(c.t, res.Token)

	return res.Token
}

func (c *testClient) createPost(token string, content string) PostResponse {
	c.t.Helper()

	code, body, _ := c.do(http.MethodPost, "/posts", token, `{"content":"`+content+`"}`)
	require.Equalf(c.t, http.StatusCreated, code, "create post failed: %s", body)

	var p PostResponse
	require.NoError(c.t, json.Unmarshal([]byte(body), &p))

	return p
}

func (c *testClient) listPosts() []PostResponse {
	c.t.Helper()

	code, body, _ := c.do(http.MethodGet, "/posts", "", "")
	require.Equal(c.t, http.StatusOK, code)

	var posts []PostResponse
	require.NoError(c.t, json.Unmarshal([]byte(body), &posts))

	return posts
}

func TestRouter_Scenario(t *testing.T) {
	c := newTestClient(t)

	c.register("alice", "pw1")
	c.register("bob", "pw2")
	aliceToken := c.login("alice", "pw1")
	bobToken := c.login("bob", "pw2")

	created := c.createPost(aliceToken, "hello")
	require.Equal(t, "alice", created.Author)
	require.Equal(t, "hello", created.Content)
	require.Empty(t, created.Likes)
	postPath := "/posts/" + created.ID.String()

	code, body, _ := c.do(http.MethodPost, postPath, aliceToken, "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"message":"Post liked","likes":1}`, body)

	code, body, _ = c.do(http.MethodPost, postPath, aliceToken, "")
	require.Equal(t, http.StatusBadRequest, code)
	require.JSONEq(t, `{"error":"service_error","message":"Post already liked"}`, body)

	code, body, _ = c.do(http.MethodDelete, postPath, bobToken, "")
	require.Equal(t, http.StatusForbidden, code)
	require.JSONEq(t, `{"error":"service_error","message":"Unauthorized to delete this post"}`, body)

	posts := c.listPosts()
	require.Len(t, posts, 1, "post must survive delete by other user")
	require.Equal(t, []string{"alice"}, posts[0].Likes, "like count unchanged after second like")

	code, body, _ = c.do(http.MethodDelete, postPath, aliceToken, "")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"message":"Post deleted successfully"}`, body)

	require.Empty(t, c.listPosts())
}
