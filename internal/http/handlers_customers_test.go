package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexacrm/crm-console/internal/domain/model"
	apperrors "github.com/nexacrm/crm-console/internal/errors"
)

type fakeCustomerGateway struct {
	listFunc    func(context.Context) ([]model.Customer, error)
	getFunc     func(context.Context, int64) (model.Customer, error)
	createFunc  func(context.Context, model.CreateCustomerRequest) (model.Customer, error)
	updateFunc  func(context.Context, int64, model.UpdateCustomerRequest) error
	deleteFunc  func(context.Context, int64) error
	logsFunc    func(context.Context) ([]model.CustomerChangeLog, error)
	logsByIDFun func(context.Context, int64) ([]model.CustomerChangeLog, error)
}

func (f fakeCustomerGateway) List(ctx context.Context) ([]model.Customer, error) {
	return f.listFunc(ctx)
}

func (f fakeCustomerGateway) GetByID(ctx context.Context, id int64) (model.Customer, error) {
	return f.getFunc(ctx, id)
}

func (f fakeCustomerGateway) Create(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error) {
	return f.createFunc(ctx, req)
}

func (f fakeCustomerGateway) Update(ctx context.Context, id int64, req model.UpdateCustomerRequest) error {
	return f.updateFunc(ctx, id, req)
}

func (f fakeCustomerGateway) Delete(ctx context.Context, id int64) error {
	return f.deleteFunc(ctx, id)
}

func (f fakeCustomerGateway) ChangeLogs(ctx context.Context) ([]model.CustomerChangeLog, error) {
	return f.logsFunc(ctx)
}

func (f fakeCustomerGateway) ChangeLogsByCustomer(ctx context.Context, id int64) ([]model.CustomerChangeLog, error) {
	return f.logsByIDFun(ctx, id)
}

func TestCustomerHandlers_List(t *testing.T) {
	h := &CustomerHandlers{Gateway: fakeCustomerGateway{
		listFunc: func(context.Context) ([]model.Customer, error) {
			return []model.Customer{{ID: 1, CompanyName: "Acme"}}, nil
		},
	}}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].CompanyName)
}

func TestCustomerHandlers_GetByID_InvalidID(t *testing.T) {
	h := &CustomerHandlers{Gateway: fakeCustomerGateway{
		getFunc: func(context.Context, int64) (model.Customer, error) {
			t.Fatal("gateway should not be called for a bad id")
			return model.Customer{}, nil
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/customers/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Geçersiz id")
}

func TestCustomerHandlers_GetByID_NotFound(t *testing.T) {
	h := &CustomerHandlers{Gateway: fakeCustomerGateway{
		getFunc: func(_ context.Context, id int64) (model.Customer, error) {
			assert.Equal(t, int64(42), id)
			return model.Customer{}, apperrors.New(apperrors.ErrCodeNotFound, "Kayıt bulunamadı")
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/customers/42", nil)
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerHandlers_Create_RequiresCompanyName(t *testing.T) {
	h := &CustomerHandlers{Gateway: fakeCustomerGateway{
		createFunc: func(context.Context, model.CreateCustomerRequest) (model.Customer, error) {
			t.Fatal("gateway should not be called on validation failure")
			return model.Customer{}, nil
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(`{"ownerName":"x"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Firma adı gereklidir")
	assert.Contains(t, rec.Body.String(), "companyName")
}

func TestCustomerHandlers_Create(t *testing.T) {
	h := &CustomerHandlers{Gateway: fakeCustomerGateway{
		createFunc: func(_ context.Context, req model.CreateCustomerRequest) (model.Customer, error) {
			return model.Customer{ID: 7, CompanyName: req.CompanyName}, nil
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(`{"companyName":"Acme"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestCustomerHandlers_Update_PathIDWins(t *testing.T) {
	var gotReq model.UpdateCustomerRequest
	h := &CustomerHandlers{Gateway: fakeCustomerGateway{
		updateFunc: func(_ context.Context, id int64, req model.UpdateCustomerRequest) error {
			assert.Equal(t, int64(5), id)
			gotReq = req
			return nil
		},
	}}

	// A body id that disagrees with the path is overwritten.
	body := `{"id":99,"companyName":"Acme"}`
	req := httptest.NewRequest(http.MethodPut, "/api/customers/5", strings.NewReader(body))
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), gotReq.ID)
}

func TestCustomerHandlers_ChangeLogsByCustomer(t *testing.T) {
	h := &CustomerHandlers{Gateway: fakeCustomerGateway{
		logsByIDFun: func(_ context.Context, id int64) ([]model.CustomerChangeLog, error) {
			assert.Equal(t, int64(3), id)
			return []model.CustomerChangeLog{{ID: 1, CustomerID: 3, FieldName: "phone"}}, nil
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/customers/3/logs", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	h.ChangeLogsByCustomer(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fieldName":"phone"`)
}
