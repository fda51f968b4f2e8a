package handlers

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"shop-console/internal/dto"
	"shop-console/internal/errors"
	"shop-console/internal/middleware"
	"shop-console/internal/models"
	"shop-console/internal/render"
	"shop-console/internal/repositories"
	"shop-console/internal/repositories/repository_mocks"
	"shop-console/internal/services"
	"shop-console/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
)

// CustomerHandlerTestSuite is the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	formats      *render.Registry
	handler      *CustomerHandler
	out          *bytes.Buffer
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.formats = render.Default()
	s.out = &bytes.Buffer{}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	searchService := services.NewCustomerSearchService(
		s.customerRepo,
		services.NewCustomerLogger(log),
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
		0,
	)
	s.handler = NewCustomerHandler(searchService, s.formats, render.DefaultFormat, log)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

// execute runs shopctl with args and returns the command error
func (s *CustomerHandlerTestSuite) execute(args ...string) error {
	s.out.Reset()

	opts := &RootOptions{}
	root := NewRootCommand(opts, nil, NewCustomerListCommand(s.formats, func() (*CustomerHandler, error) {
		return s.handler, nil
	}))
	root.SetOut(s.out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	return root.ExecuteContext(context.Background())
}

func (s *CustomerHandlerTestSuite) results(customers ...models.Customer) *models.CustomerSearchResults {
	return &models.CustomerSearchResults{
		Items:      customers,
		TotalCount: int64(len(customers)),
	}
}

func (s *CustomerHandlerTestSuite) fakeCustomer(id uint) models.Customer {
	return models.Customer{
		ID:        id,
		Email:     gofakeit.Email(),
		Firstname: gofakeit.FirstName(),
		Lastname:  gofakeit.LastName(),
		WebsiteID: 1,
		CreatedAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
	}
}

func (s *CustomerHandlerTestSuite) TestCustomerList_NoSearchQueriesAllCustomers() {
	customer := models.Customer{
		ID:        1,
		Email:     "roni_cost@example.com",
		Firstname: "Veronica",
		Lastname:  "Costello",
		WebsiteID: 1,
		CreatedAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
	}

	s.customerRepo.EXPECT().
		GetList(gomock.Any()).
		DoAndReturn(func(criteria models.SearchCriteria) (*models.CustomerSearchResults, error) {
			s.Empty(criteria.FilterGroups)
			return s.results(customer), nil
		})

	err := s.execute("customer:list")

	s.Require().NoError(err)
	s.Contains(s.out.String(), "| id | email                 | firstname | lastname | website | created_at          |")
	s.Contains(s.out.String(), "| 1  | roni_cost@example.com | Veronica  | Costello | 1       | 2024-03-01 10:30:00 |")
}

func (s *CustomerHandlerTestSuite) TestCustomerList_SearchBuildsOrGroup() {
	s.customerRepo.EXPECT().
		GetList(gomock.Any()).
		DoAndReturn(func(criteria models.SearchCriteria) (*models.CustomerSearchResults, error) {
			s.Require().Len(criteria.FilterGroups, 1)
			filters := criteria.FilterGroups[0].Filters
			s.Require().Len(filters, 3)
			for i, field := range []string{"email", "firstname", "lastname"} {
				s.Equal(field, filters[i].Field())
				s.Equal(models.ConditionLike, filters[i].ConditionType())
				s.Equal("%john%", filters[i].Value())
			}
			return s.results(s.fakeCustomer(2)), nil
		})

	s.Require().NoError(s.execute("customer:list", "john"))
}

func (s *CustomerHandlerTestSuite) TestCustomerList_EmptySearchArgumentMatchesAll() {
	s.customerRepo.EXPECT().
		GetList(gomock.Any()).
		DoAndReturn(func(criteria models.SearchCriteria) (*models.CustomerSearchResults, error) {
			s.True(criteria.IsMatchAll())
			return s.results(), nil
		})

	s.Require().NoError(s.execute("customer:list", ""))
}

func (s *CustomerHandlerTestSuite) TestCustomerList_NoResultsForEveryFormat() {
	for _, format := range s.formats.Formats() {
		s.customerRepo.EXPECT().GetList(gomock.Any()).Return(s.results(), nil)

		err := s.execute("customer:list", "nobody", "--format="+format)

		s.Require().NoError(err, format)
		s.Equal("No customers found\n", s.out.String(), format)
	}
}

func (s *CustomerHandlerTestSuite) TestCustomerList_JSONFormat() {
	customer := s.fakeCustomer(7)
	s.customerRepo.EXPECT().GetList(gomock.Any()).Return(s.results(customer), nil)

	err := s.execute("customer:list", "--format", "json")

	s.Require().NoError(err)
	s.True(strings.HasPrefix(s.out.String(), "["))
	s.Contains(s.out.String(), `"email": "`+customer.Email+`"`)
	s.Contains(s.out.String(), `"id": "7"`)
}

func (s *CustomerHandlerTestSuite) TestCustomerList_InvalidFormatSkipsRepository() {
	s.customerRepo.EXPECT().GetList(gomock.Any()).Times(0)

	for i := 0; i < 2; i++ {
		err := s.execute("customer:list", "john", "--format=pdf")

		s.Require().Error(err)
		s.ErrorIs(err, render.ErrInvalidFormat)
		s.Empty(s.out.String())
		s.Equal(errors.ExitUsage, middleware.ClassifyError(err).ExitCode())
	}
}

func (s *CustomerHandlerTestSuite) TestCustomerList_InvalidFormatFailsBeforeBootstrap() {
	bootstrapped := 0
	dbErr := errors.WrapDatabaseError(stderrors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))
	bootstrap := func(*cobra.Command) error {
		bootstrapped++
		return dbErr
	}

	newRoot := func(args ...string) *cobra.Command {
		root := NewRootCommand(&RootOptions{}, bootstrap, NewCustomerListCommand(s.formats, func() (*CustomerHandler, error) {
			return s.handler, nil
		}))
		root.SetOut(s.out)
		root.SetErr(io.Discard)
		root.SetArgs(args)
		return root
	}

	err := newRoot("customer:list", "--format=bogus").Execute()
	s.ErrorIs(err, render.ErrInvalidFormat)
	s.Equal(errors.ExitUsage, middleware.ClassifyError(err).ExitCode())
	s.Zero(bootstrapped)

	err = newRoot("customer:list", "--format=csv").Execute()
	s.ErrorIs(err, dbErr)
	s.Equal(errors.ExitDatabase, middleware.ClassifyError(err).ExitCode())
	s.Equal(1, bootstrapped)
}

func (s *CustomerHandlerTestSuite) TestCustomerList_RepositoryErrorPropagates() {
	dbErr := stderrors.New("failed to count customers: connection refused")
	s.customerRepo.EXPECT().GetList(gomock.Any()).Return(nil, dbErr)

	err := s.execute("customer:list", "john")

	s.Require().Error(err)
	s.ErrorIs(err, dbErr)
	s.Equal(dbErr.Error(), err.Error())
	s.Empty(s.out.String())
	s.Equal(errors.ExitDatabase, middleware.ClassifyError(err).ExitCode())
}

func (s *CustomerHandlerTestSuite) TestCustomerList_TooManyArguments() {
	s.customerRepo.EXPECT().GetList(gomock.Any()).Times(0)

	err := s.execute("customer:list", "john", "doe")

	var cmdErr *errors.CommandError
	s.Require().True(stderrors.As(err, &cmdErr))
	s.Equal(errors.ValidationInvalidArgument, cmdErr.Code)
}

func (s *CustomerHandlerTestSuite) TestCustomerList_UnknownFlag() {
	err := s.execute("customer:list", "--colour=red")

	var cmdErr *errors.CommandError
	s.Require().True(stderrors.As(err, &cmdErr))
	s.Equal(errors.ValidationInvalidArgument, cmdErr.Code)
}

func (s *CustomerHandlerTestSuite) TestCustomerList_HelpListsFormats() {
	s.Require().NoError(s.execute("customer:list", "--help"))

	s.Contains(s.out.String(), "Lists all customers of the current installation.")
	s.Contains(s.out.String(), "Output Format. One of [csv,json,json_array,table,xlsx,xml,yaml]")
}

func (s *CustomerHandlerTestSuite) TestCustomerList_ProviderError() {
	opts := &RootOptions{}
	root := NewRootCommand(opts, nil, NewCustomerListCommand(s.formats, func() (*CustomerHandler, error) {
		return nil, stderrors.New("application not initialized")
	}))
	root.SetOut(io.Discard)
	root.SetArgs([]string{"customer:list"})

	s.EqualError(root.Execute(), "application not initialized")
}

func (s *CustomerHandlerTestSuite) TestCustomerList_PanicIsRecovered() {
	searchService := service_mocks.NewMockCustomerSearchServiceInterface(s.ctrl)
	searchService.EXPECT().
		ListCustomers(gomock.Any(), "john").
		DoAndReturn(func(ctx context.Context, search string) (*models.CustomerSearchResults, error) {
			panic("nil pointer in search")
		})
	s.handler = NewCustomerHandler(searchService, s.formats, render.DefaultFormat, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var err error
	s.NotPanics(func() {
		err = s.execute("customer:list", "john")
	})

	var cmdErr *errors.CommandError
	s.Require().True(stderrors.As(err, &cmdErr))
	s.Equal(errors.SystemInternalError, cmdErr.Code)
	s.NotEmpty(cmdErr.TraceID)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_DefaultFormatFromConfig() {
	searchService := service_mocks.NewMockCustomerSearchServiceInterface(s.ctrl)
	searchService.EXPECT().
		ListCustomers(gomock.Any(), "").
		Return(s.results(s.fakeCustomer(3)), nil)
	handler := NewCustomerHandler(searchService, s.formats, "csv", slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := handler.ListCustomers(context.Background(), s.out, dto.ListCustomersRequest{})

	s.Require().NoError(err)
	s.True(strings.HasPrefix(s.out.String(), "id,email,firstname,lastname,website,created_at\n"))
}

func (s *CustomerHandlerTestSuite) TestListCustomers_InvalidFilterIsNotADatabaseError() {
	searchService := service_mocks.NewMockCustomerSearchServiceInterface(s.ctrl)
	searchService.EXPECT().
		ListCustomers(gomock.Any(), "x").
		Return(nil, fmt.Errorf("%w: password", repositories.ErrInvalidFilterField))
	handler := NewCustomerHandler(searchService, s.formats, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := handler.ListCustomers(context.Background(), s.out, dto.ListCustomersRequest{Search: "x"})

	s.Equal(errors.ExitUsage, middleware.ClassifyError(err).ExitCode())
}
