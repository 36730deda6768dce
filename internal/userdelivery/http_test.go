package userdelivery

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/randompkg"
	"github.com/go-petr/super-app/pkg/web"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.ReleaseMode)
	os.Exit(m.Run())
}

func randomAccount() domain.Account {
	return domain.Account{
		Username:  randompkg.Username(),
		Role:      domain.RoleUser,
		Balance:   decimal.Zero,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func newRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	return r
}

func decodeResponse(t *testing.T, body io.Reader) web.Response {
	t.Helper()

	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var res web.Response
	require.NoError(t, json.Unmarshal(data, &res))

	return res
}

func TestRegisterAPI(t *testing.T) {
	account := randomAccount()
	password := randompkg.Password()

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(s *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			requestBody: gin.H{
				"username": account.Username,
				"password": password,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Register(gomock.Any(), gomock.Eq(account.Username), gomock.Eq(password), gomock.Eq("")).
					Times(1).
					Return(account, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Empty(t, res.Error)

				data, ok := res.Data.(map[string]any)
				require.True(t, ok)
				require.Equal(t, "registered", data["status"])

				got, ok := data["user"].(map[string]any)
				require.True(t, ok)
				require.Equal(t, account.Username, got["username"])
				require.Equal(t, domain.RoleUser, got["role"])
			},
		},
		{
			name: "AdminRole",
			requestBody: gin.H{
				"username": account.Username,
				"password": password,
				"role":     domain.RoleAdmin,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Register(gomock.Any(), gomock.Eq(account.Username), gomock.Eq(password), gomock.Eq(domain.RoleAdmin)).
					Times(1).
					Return(account, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "InvalidUsername",
			requestBody: gin.H{
				"username": "user&%",
				"password": password,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, "Username must contain only letters and digits", res.Error)
			},
		},
		{
			name: "MissingPassword",
			requestBody: gin.H{
				"username": account.Username,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, "Password is required", res.Error)
			},
		},
		{
			name: "UnknownRole",
			requestBody: gin.H{
				"username": account.Username,
				"password": password,
				"role":     "ROOT",
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "PasswordTooLong",
			requestBody: gin.H{
				"username": account.Username,
				"password": strings.Repeat("€", 30),
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Register(gomock.Any(), gomock.Eq(account.Username), gomock.Eq(strings.Repeat("€", 30)), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrPasswordTooLong)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, domain.ErrPasswordTooLong.Error(), res.Error)
			},
		},
		{
			name: "DuplicateAccount",
			requestBody: gin.H{
				"username": account.Username,
				"password": password,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrDuplicateAccount)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, domain.ErrDuplicateAccount.Error(), res.Error)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"username": account.Username,
				"password": password,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := NewMockService(ctrl)
			tc.buildStubs(s)

			router := newRouter(NewHandler(s))
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			require.NoError(t, err)

			router.ServeHTTP(recorder, req)
			tc.checkResponse(recorder)
		})
	}
}

func TestLoginAPI(t *testing.T) {
	account := randomAccount()
	password := randompkg.Password()

	session := domain.Session{
		AccessToken:          randompkg.String(40),
		AccessTokenExpiresAt: time.Now().Add(time.Minute).Truncate(time.Second).UTC(),
		Account:              account,
	}

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(s *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			requestBody: gin.H{
				"username": account.Username,
				"password": password,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Login(gomock.Any(), gomock.Eq(account.Username), gomock.Eq(password)).
					Times(1).
					Return(session, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				data, ok := res.Data.(map[string]any)
				require.True(t, ok)
				require.Equal(t, "login_success", data["status"])
				require.Equal(t, session.AccessToken, data["access_token"])
			},
		},
		{
			name: "InvalidCredentials",
			requestBody: gin.H{
				"username": account.Username,
				"password": password,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Session{}, domain.ErrInvalidCredentials)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, domain.ErrInvalidCredentials.Error(), res.Error)
			},
		},
		{
			name: "MissingUsername",
			requestBody: gin.H{
				"password": password,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"username": account.Username,
				"password": password,
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Session{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := NewMockService(ctrl)
			tc.buildStubs(s)

			router := newRouter(NewHandler(s))
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
			require.NoError(t, err)

			router.ServeHTTP(recorder, req)
			tc.checkResponse(recorder)
		})
	}
}
