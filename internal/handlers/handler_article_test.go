package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	"github.com/sake/strichliste/internal/dto"
	"github.com/sake/strichliste/internal/handlers"
	"github.com/sake/strichliste/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ArticleHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockArticleService
	jwtSecret string
}

func (suite *ArticleHandlerTestSuite) SetupSuite() {
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *ArticleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockSvc = new(MockArticleService)

	api := suite.router.Group("/api")
	handlers.RegisterArticleRoutes(api, suite.mockSvc, middleware.AdminAuthMiddleware(suite.jwtSecret))
}

// generateTestToken creates a signed admin JWT for testing.
func (suite *ArticleHandlerTestSuite) generateTestToken(subject string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "strichliste-test",
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ArticleHandlerTestSuite) do(method, url string, body any, authorized bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("bar-admin"))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_RequiresAdmin() {
	w := suite.do(http.MethodPost, "/api/article", dto.CreateArticleRequest{Name: "Mate", Amount: domain.Int64Ptr(150)}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateArticle", mock.Anything, mock.Anything)
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_Success() {
	req := dto.CreateArticleRequest{Name: "Mate", Barcode: domain.StringPtr("4029764001807"), Amount: domain.Int64Ptr(150)}
	created := &domain.ArticleObject{Article: domain.Article{ID: 1, Name: "Mate", Barcode: req.Barcode, UnitAmount: 150, Active: true}}
	suite.mockSvc.On("CreateArticle", mock.Anything, req).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/article", req, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ArticleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(150), resp.Amount)
	suite.True(resp.IsActive)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_InvalidBarcode() {
	w := suite.do(http.MethodPost, "/api/article", dto.CreateArticleRequest{
		Name:    "Mate",
		Barcode: domain.StringPtr("not a barcode!"),
		Amount:  domain.Int64Ptr(150),
	}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ArticleHandlerTestSuite) TestReplaceArticle_Inactive() {
	suite.mockSvc.On("ReplaceArticle", mock.Anything, int64(3), mock.Anything).
		Return(nil, apperrors.NewConflictError("Article 3 is inactive and cannot be replaced.", nil)).Once()

	w := suite.do(http.MethodPost, "/api/article/3", dto.CreateArticleRequest{Name: "Mate", Amount: domain.Int64Ptr(200)}, true)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "inactive")
}

func (suite *ArticleHandlerTestSuite) TestGetArticle_WithHistory() {
	chain := &domain.ArticleObject{
		Article:   domain.Article{ID: 2, PrecursorID: domain.Int64Ptr(1), Name: "Mate", UnitAmount: 200, Active: true},
		Precursor: &domain.ArticleObject{Article: domain.Article{ID: 1, Name: "Mate", UnitAmount: 150}},
	}
	suite.mockSvc.On("GetArticle", mock.Anything, int64(2)).Return(chain, nil).Once()

	w := suite.do(http.MethodGet, "/api/article/2", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ArticleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Precursor)
	suite.Equal(int64(150), resp.Precursor.Amount)
	suite.Nil(resp.Precursor.Precursor)
}

func (suite *ArticleHandlerTestSuite) TestListArticles_QueryBinding() {
	suite.mockSvc.On("ListArticles", mock.Anything, mock.MatchedBy(func(p dto.ListArticlesParams) bool {
		return p.Active != nil && !*p.Active && p.WithAncestors() && p.Limit == 20
	})).Return([]domain.ArticleObject{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/article?active=false&ancestors=true&limit=20", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"articles":[],"count":0}`, w.Body.String())
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *ArticleHandlerTestSuite) TestListArticles_AncestorQueryKey() {
	suite.mockSvc.On("ListArticles", mock.Anything, mock.MatchedBy(func(p dto.ListArticlesParams) bool {
		return p.Ancestor && p.WithAncestors()
	})).Return([]domain.ArticleObject{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/article?ancestor=true", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func TestArticleHandler(t *testing.T) {
	suite.Run(t, new(ArticleHandlerTestSuite))
}
