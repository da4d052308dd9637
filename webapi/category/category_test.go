package category_test

import (
	"testing"

	"github.com/autoconnect/backend/pkg/domain/category"
	categoryweb "github.com/autoconnect/backend/webapi/category"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/autoconnect/backend/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const fuel = `{"categoryid":"fuel","name":"Fuel","type":"expense","color":"#f97316","icon":"fuel-pump"}`

type CategoryTestSuite struct {
	testutils.E2ETestSuite
	token string
}

func (s *CategoryTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	_, s.token = s.CreateTestUserWithToken()
}

func (s *CategoryTestSuite) create(body string) *category.Category {
	resp := s.MakeRequest(fiber.MethodPost, "/api/categories", body, s.token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var out categoryweb.CreateCategoryResponse
	s.DecodeJSON(resp, &out)
	return out.Category
}

func (s *CategoryTestSuite) TestCreate() {
	c := s.create(fuel)
	s.Equal("fuel", c.CategoryID)
	s.Equal(category.TypeExpense, c.Type)
}

func (s *CategoryTestSuite) TestCreate_Validation() {
	for name, body := range map[string]string{
		"missing icon": `{"categoryid":"fuel","name":"Fuel","type":"expense","color":"#fff"}`,
		"empty name":   `{"categoryid":"fuel","name":"","type":"expense","color":"#fff","icon":"x"}`,
		"unknown type": `{"categoryid":"fuel","name":"Fuel","type":"transfer","color":"#fff","icon":"x"}`,
	} {
		s.Run(name, func() {
			resp := s.MakeRequest(fiber.MethodPost, "/api/categories", body, s.token)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			var env common.ErrorResponse
			s.DecodeJSON(resp, &env)
			s.Equal("error", env.Status)
		})
	}
}

func (s *CategoryTestSuite) TestCreate_DuplicateIsServerError() {
	s.create(fuel)

	resp := s.MakeRequest(fiber.MethodPost, "/api/categories", fuel, s.token)
	s.Equal(fiber.StatusInternalServerError, resp.StatusCode)
	var env common.ErrorResponse
	s.DecodeJSON(resp, &env)
	s.Equal(common.MsgUnknownServerError, env.Message)
	s.Equal("error", env.Status)
	s.NotEmpty(env.Error)
}

func (s *CategoryTestSuite) TestListIsSortedByName() {
	s.create(fuel)
	s.create(`{"categoryid":"salary","name":"Salary","type":"income","color":"#22c55e","icon":"wallet"}`)
	s.create(`{"categoryid":"emi","name":"Car EMI","type":"expense","color":"#a855f7","icon":"car"}`)

	resp := s.MakeRequest(fiber.MethodGet, "/api/categories", "", s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var list []category.Category
	s.DecodeJSON(resp, &list)
	s.Require().Len(list, 3)
	s.Equal([]string{"Car EMI", "Fuel", "Salary"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func (s *CategoryTestSuite) TestGetUpdateDelete() {
	c := s.create(fuel)
	path := "/api/categories/" + c.ID.String()

	resp := s.MakeRequest(fiber.MethodGet, path, "", s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPut, path, `{"color":"#000000","categoryid":"ignored"}`, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var got category.Category
	s.DecodeJSON(resp, &got)
	s.Equal("#000000", got.Color)
	s.Equal("fuel", got.CategoryID)
	s.Equal("Fuel", got.Name)

	resp = s.MakeRequest(fiber.MethodPut, path, `{"type":"loan"}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodDelete, path, "", s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodGet, path, "", s.token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	resp = s.MakeRequest(fiber.MethodDelete, "/api/categories/"+uuid.NewString(), "", s.token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *CategoryTestSuite) TestRequiresToken() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/categories", "", "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCategoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryTestSuite))
}
