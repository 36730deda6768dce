package walletdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/moneypkg"
	"github.com/go-petr/super-app/pkg/randompkg"
	"github.com/go-petr/super-app/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.ReleaseMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("amount", moneypkg.ValidAmount); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is equal to %s", m.want)
}

func newRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.POST("/wallet/add/:username/:amount", h.TopUp)
	r.POST("/wallet/pay_bill", h.PayBill)
	r.GET("/wallet/:username", h.Balance)
	r.GET("/internet/buy/:username/:gb", h.BuyInternet)
	r.GET("/internet/packages/:username", h.Packages)

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

func dataField(t *testing.T, res web.Response, key string) any {
	t.Helper()

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)

	return data[key]
}

func TestTopUpAPI(t *testing.T) {
	username := randompkg.Username()

	testCases := []struct {
		name          string
		url           string
		buildStubs    func(s *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			url:  fmt.Sprintf("/wallet/add/%s/100.50", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().
					TopUp(gomock.Any(), gomock.Eq(username), decimalMatcher{decimal.RequireFromString("100.5")}).
					Times(1).
					Return(decimal.RequireFromString("100.5"), nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, "100.5", dataField(t, res, "balance"))
				require.Equal(t, "added", dataField(t, res, "status"))
			},
		},
		{
			name: "ZeroAmount",
			url:  fmt.Sprintf("/wallet/add/%s/0", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().
					TopUp(gomock.Any(), gomock.Eq(username), decimalMatcher{decimal.Zero}).
					Times(1).
					Return(decimal.Zero, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "NegativeAmount",
			url:  fmt.Sprintf("/wallet/add/%s/-5", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().TopUp(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, "Amount must be a non-negative decimal amount", res.Error)
			},
		},
		{
			name: "HugeExponent",
			url:  fmt.Sprintf("/wallet/add/%s/1e2000000", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().TopUp(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				require.Less(t, recorder.Body.Len(), 256)
			},
		},
		{
			name: "MalformedAmount",
			url:  fmt.Sprintf("/wallet/add/%s/ten", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().TopUp(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "AccountNotFound",
			url:  "/wallet/add/ghost/10",
			buildStubs: func(s *MockService) {
				s.EXPECT().
					TopUp(gomock.Any(), gomock.Eq("ghost"), gomock.Any()).
					Times(1).
					Return(decimal.Zero, domain.ErrAccountNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, domain.ErrAccountNotFound.Error(), res.Error)
			},
		},
		{
			name: "InternalError",
			url:  fmt.Sprintf("/wallet/add/%s/10", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().
					TopUp(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(decimal.Zero, errorspkg.ErrInternal)
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

			req, err := http.NewRequest(http.MethodPost, tc.url, nil)
			require.NoError(t, err)

			router.ServeHTTP(recorder, req)
			tc.checkResponse(recorder)
		})
	}
}

func TestPayBillAPI(t *testing.T) {
	username := randompkg.Username()

	testCases := []struct {
		name          string
		body          string
		buildStubs    func(s *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: fmt.Sprintf(`{"username":%q,"type":"electricity","amount":40}`, username),
			buildStubs: func(s *MockService) {
				bill := domain.Bill{Username: username, Type: "electricity", Amount: decimal.NewFromInt(40)}

				s.EXPECT().
					PayBill(gomock.Any(), gomock.Eq(bill)).
					Times(1).
					Return(decimal.NewFromInt(60), nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, "paid", dataField(t, res, "status"))
				require.Equal(t, "60", dataField(t, res, "balance"))
			},
		},
		{
			name: "QuotedAmount",
			body: fmt.Sprintf(`{"username":%q,"type":"water","amount":"12.25"}`, username),
			buildStubs: func(s *MockService) {
				s.EXPECT().
					PayBill(gomock.Any(), gomock.Any()).
					Times(1).
					Return(decimal.NewFromInt(1), nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "InsufficientFunds",
			body: fmt.Sprintf(`{"username":%q,"type":"rent","amount":1000}`, username),
			buildStubs: func(s *MockService) {
				s.EXPECT().
					PayBill(gomock.Any(), gomock.Any()).
					Times(1).
					Return(decimal.Zero, domain.ErrInsufficientFunds)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, "insufficient funds", res.Error)
			},
		},
		{
			name: "MissingType",
			body: fmt.Sprintf(`{"username":%q,"amount":10}`, username),
			buildStubs: func(s *MockService) {
				s.EXPECT().PayBill(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, "Type is required", res.Error)
			},
		},
		{
			name: "NegativeAmount",
			body: fmt.Sprintf(`{"username":%q,"type":"rent","amount":-3}`, username),
			buildStubs: func(s *MockService) {
				s.EXPECT().PayBill(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "TinyExponent",
			body: fmt.Sprintf(`{"username":%q,"type":"rent","amount":1e-100000}`, username),
			buildStubs: func(s *MockService) {
				s.EXPECT().PayBill(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "AccountNotFound",
			body: `{"username":"ghost","type":"rent","amount":3}`,
			buildStubs: func(s *MockService) {
				s.EXPECT().
					PayBill(gomock.Any(), gomock.Any()).
					Times(1).
					Return(decimal.Zero, domain.ErrAccountNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
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

			req, err := http.NewRequest(http.MethodPost, "/wallet/pay_bill", bytes.NewBufferString(tc.body))
			require.NoError(t, err)

			router.ServeHTTP(recorder, req)
			tc.checkResponse(recorder)
		})
	}
}

func TestBalanceAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	username := randompkg.Username()

	s := NewMockService(ctrl)
	s.EXPECT().Balance(gomock.Any(), gomock.Eq(username)).Times(1).Return(decimal.NewFromInt(42), nil)
	s.EXPECT().Balance(gomock.Any(), gomock.Eq("ghost")).Times(1).Return(decimal.Zero, domain.ErrAccountNotFound)

	router := newRouter(NewHandler(s))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wallet/"+username, nil)
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	res := decodeResponse(t, recorder.Body)
	require.Equal(t, "42", dataField(t, res, "balance"))
	require.Equal(t, username, dataField(t, res, "username"))

	recorder = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/wallet/ghost", nil)
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBuyInternetAPI(t *testing.T) {
	username := randompkg.Username()

	p := domain.InternetPackage{
		Username:    username,
		GB:          3,
		Cost:        decimal.NewFromInt(30),
		Balance:     decimal.NewFromInt(70),
		PurchasedAt: time.Now().UTC(),
	}

	testCases := []struct {
		name          string
		url           string
		buildStubs    func(s *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			url:  fmt.Sprintf("/internet/buy/%s/3", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().
					BuyInternet(gomock.Any(), gomock.Eq(username), gomock.Eq(3)).
					Times(1).
					Return(p, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				res := decodeResponse(t, recorder.Body)
				require.Equal(t, "activated", dataField(t, res, "status"))

				got, ok := dataField(t, res, "package").(map[string]any)
				require.True(t, ok)
				require.Equal(t, "30", got["cost"])
				require.Equal(t, "70", got["balance"])
			},
		},
		{
			name: "ZeroGB",
			url:  fmt.Sprintf("/internet/buy/%s/0", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().BuyInternet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NotANumber",
			url:  fmt.Sprintf("/internet/buy/%s/lots", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().BuyInternet(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InsufficientFunds",
			url:  fmt.Sprintf("/internet/buy/%s/500", username),
			buildStubs: func(s *MockService) {
				s.EXPECT().
					BuyInternet(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.InternetPackage{}, domain.ErrInsufficientFunds)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
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

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			router.ServeHTTP(recorder, req)
			tc.checkResponse(recorder)
		})
	}
}

func TestPackagesAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewMockService(ctrl)
	s.EXPECT().Packages(gomock.Any(), gomock.Eq("alice")).Times(1).Return([]domain.InternetPackage{})

	router := newRouter(NewHandler(s))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/internet/packages/alice", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"data":[]}`, recorder.Body.String())
}
