package controllers_test

import (
	"net/http"
	"testing"

	"zentrixia-backend/config"
	"zentrixia-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingPayload(ownerID, date string) string {
	return `{
		"name": "Carlos Silva",
		"whatsapp": "11999998888",
		"email": "c@x.com",
		"service": "Corte Executivo Premium",
		"date": "` + date + `",
		"timeSlot": "14:00",
		"ownerId": "` + ownerID + `"
	}`
}

func TestCreateAppointment(t *testing.T) {
	r := setupRouter(t)
	ownerID := uuid.NewString()

	w := doRequest(r, http.MethodPost, "/api/agendamentos", bookingPayload(ownerID, nextBookableDate()), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	out := decodeBody(t, w)
	assert.Equal(t, models.StatusPending, out["status"])
	assert.NotEmpty(t, out["id"])
	// Price comes from the catalog, not the client
	assert.EqualValues(t, 80, out["price"])
	assert.Equal(t, ownerID, out["ownerId"])
}

func TestCreateAppointment_DefaultOwner(t *testing.T) {
	r := setupRouter(t)
	shopOwner := uuid.NewString()
	t.Setenv("DEFAULT_OWNER_ID", shopOwner)

	body := `{
		"name": "Carlos Silva",
		"whatsapp": "11999998888",
		"email": "c@x.com",
		"service": "Degradê Profissional",
		"date": "` + nextBookableDate() + `",
		"timeSlot": "09:00"
	}`
	w := doRequest(r, http.MethodPost, "/api/agendamentos", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	out := decodeBody(t, w)
	assert.Equal(t, shopOwner, out["ownerId"])
	assert.EqualValues(t, 70, out["price"])
}

func TestCreateAppointment_Validation(t *testing.T) {
	date := nextBookableDate()

	cases := []struct {
		name    string
		mutate  map[string]string
		field   string
		message string
	}{
		{"short name", map[string]string{"name": "Jo"}, "nome", "Nome deve ter pelo menos 3 caracteres"},
		{"name with digits", map[string]string{"name": "Carlos 123"}, "nome", "Nome deve conter apenas letras"},
		{"short phone", map[string]string{"whatsapp": "1199"}, "whatsapp", "WhatsApp deve ter pelo menos 10 dígitos"},
		{"bad email", map[string]string{"email": "not-an-email"}, "email", "Email inválido"},
		{"unknown service", map[string]string{"service": "Corte Gratuito"}, "servico", "Serviço inválido"},
		{"empty service", map[string]string{"service": ""}, "servico", "Selecione um serviço"},
		{"past date", map[string]string{"date": "2020-01-06"}, "data", "Data não pode ser no passado"},
		{"bad slot", map[string]string{"timeSlot": "12:00"}, "horario", "Horário inválido"},
		{"empty slot", map[string]string{"timeSlot": ""}, "horario", "Selecione um horário"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(t)

			fields := map[string]string{
				"name":     "Carlos Silva",
				"whatsapp": "11999998888",
				"email":    "c@x.com",
				"service":  "Corte Executivo Premium",
				"date":     date,
				"timeSlot": "14:00",
			}
			for k, v := range tc.mutate {
				fields[k] = v
			}
			body := `{"name":"` + fields["name"] + `","whatsapp":"` + fields["whatsapp"] +
				`","email":"` + fields["email"] + `","service":"` + fields["service"] +
				`","date":"` + fields["date"] + `","timeSlot":"` + fields["timeSlot"] + `"}`

			w := doRequest(r, http.MethodPost, "/api/agendamentos", body, "")
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			out := decodeBody(t, w)
			assert.Equal(t, tc.field, out["field"])
			assert.Equal(t, tc.message, out["error"])

			// Validation failures never reach the store
			var count int64
			config.DB.Model(&models.Appointment{}).Count(&count)
			assert.Zero(t, count)
		})
	}
}

func TestCreateAppointment_SundayRejected(t *testing.T) {
	r := setupRouter(t)

	// Walk forward to the next Sunday
	sunday := nextBookableDate() // a Monday
	d, _ := parseDate(sunday)
	sunday = d.AddDate(0, 0, 6).Format("2006-01-02")

	body := `{
		"name": "Carlos Silva",
		"whatsapp": "11999998888",
		"email": "c@x.com",
		"service": "Corte Executivo Premium",
		"date": "` + sunday + `",
		"timeSlot": "14:00"
	}`
	w := doRequest(r, http.MethodPost, "/api/agendamentos", body, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	out := decodeBody(t, w)
	assert.Equal(t, "data", out["field"])
	assert.Equal(t, "Estamos fechados aos domingos", out["error"])
}

func TestStatusLifecycle(t *testing.T) {
	r := setupRouter(t)
	ownerID, token := registerOwner(t, r, "owner@zentrixia.com")

	w := doRequest(r, http.MethodPost, "/api/agendamentos", bookingPayload(ownerID, nextBookableDate()), "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	// pendente -> confirmado
	w = doRequest(r, http.MethodPut, "/api/agendamentos/"+id+"/status", `{"status":"confirmado"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusConfirmed, decodeBody(t, w)["status"])

	// list reflects the new status
	w = doRequest(r, http.MethodGet, "/api/agendamentos?status=confirmado", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	// confirmado -> concluido
	w = doRequest(r, http.MethodPut, "/api/agendamentos/"+id+"/status", `{"status":"concluido"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusCompleted, decodeBody(t, w)["status"])

	// concluido is terminal: moving back to pendente is rejected
	w = doRequest(r, http.MethodPut, "/api/agendamentos/"+id+"/status", `{"status":"pendente"}`, token)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// and so is cancelling a completed appointment
	w = doRequest(r, http.MethodPut, "/api/agendamentos/"+id+"/status", `{"status":"cancelado"}`, token)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// the stored status is untouched by the rejected updates
	var stored models.Appointment
	require.NoError(t, config.DB.First(&stored, "id = ?", id).Error)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestCancelIsIdempotent(t *testing.T) {
	r := setupRouter(t)
	ownerID, token := registerOwner(t, r, "owner@zentrixia.com")

	w := doRequest(r, http.MethodPost, "/api/agendamentos", bookingPayload(ownerID, nextBookableDate()), "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doRequest(r, http.MethodPut, "/api/agendamentos/"+id+"/status", `{"status":"cancelado"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Repeating the call leaves the same end state
	w = doRequest(r, http.MethodPut, "/api/agendamentos/"+id+"/status", `{"status":"cancelado"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusCancelled, decodeBody(t, w)["status"])
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	r := setupRouter(t)
	ownerID, token := registerOwner(t, r, "owner@zentrixia.com")

	w := doRequest(r, http.MethodPost, "/api/agendamentos", bookingPayload(ownerID, nextBookableDate()), "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doRequest(r, http.MethodPut, "/api/agendamentos/"+id+"/status", `{"status":"finalizado"}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_OtherTenant(t *testing.T) {
	r := setupRouter(t)
	_, token := registerOwner(t, r, "owner@zentrixia.com")

	// Appointment belongs to a different owner
	otherOwner := uuid.NewString()
	w := doRequest(r, http.MethodPost, "/api/agendamentos", bookingPayload(otherOwner, nextBookableDate()), "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doRequest(r, http.MethodPut, "/api/agendamentos/"+id+"/status", `{"status":"confirmado"}`, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPriceRoundTrip(t *testing.T) {
	r := setupRouter(t)
	ownerID, token := registerOwner(t, r, "owner@zentrixia.com")

	body := `{
		"name": "Carlos Silva",
		"whatsapp": "11999998888",
		"email": "c@x.com",
		"service": "Corte + Barba Modelada",
		"date": "` + nextBookableDate() + `",
		"timeSlot": "15:00",
		"ownerId": "` + ownerID + `"
	}`
	w := doRequest(r, http.MethodPost, "/api/agendamentos", body, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 120, decodeBody(t, w)["price"])

	w = doRequest(r, http.MethodGet, "/api/agendamentos", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Appointment
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, float64(120), listed[0].ServicePrice)
}

func TestListAppointments(t *testing.T) {
	r := setupRouter(t)
	ownerID, token := registerOwner(t, r, "owner@zentrixia.com")
	ownerUUID := uuid.MustParse(ownerID)

	seed := []models.Appointment{
		{OwnerID: ownerUUID, CustomerName: "Carlos Silva", CustomerPhone: "11999998888", CustomerEmail: "c@x.com",
			ServiceName: "Corte Executivo Premium", ServicePrice: 80, Date: "2030-01-08", TimeSlot: "09:00", Status: models.StatusPending},
		{OwnerID: ownerUUID, CustomerName: "Bruno Costa", CustomerPhone: "11888887777", CustomerEmail: "b@x.com",
			ServiceName: "Degradê Profissional", ServicePrice: 70, Date: "2030-01-07", TimeSlot: "19:00", Status: models.StatusConfirmed},
		{OwnerID: ownerUUID, CustomerName: "André Dias", CustomerPhone: "11777776666", CustomerEmail: "a@x.com",
			ServiceName: "Pigmentação de Barba", ServicePrice: 100, Date: "2030-01-07", TimeSlot: "10:00", Status: models.StatusConfirmed},
		// another tenant's row must never show up
		{OwnerID: uuid.New(), CustomerName: "Fora do Tenant", CustomerPhone: "11000000000", CustomerEmail: "f@x.com",
			ServiceName: "Corte Executivo Premium", ServicePrice: 80, Date: "2030-01-07", TimeSlot: "11:00", Status: models.StatusPending},
	}
	for i := range seed {
		require.NoError(t, config.DB.Create(&seed[i]).Error)
	}

	// Ordered by date asc, then time slot asc
	w := doRequest(r, http.MethodGet, "/api/agendamentos", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Appointment
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, "André Dias", listed[0].CustomerName)
	assert.Equal(t, "Bruno Costa", listed[1].CustomerName)
	assert.Equal(t, "Carlos Silva", listed[2].CustomerName)

	// Case-insensitive substring search over name
	w = doRequest(r, http.MethodGet, "/api/agendamentos?search=carlos", "", token)
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Carlos Silva", listed[0].CustomerName)

	// Search also covers the service name
	w = doRequest(r, http.MethodGet, "/api/agendamentos?search=degra", "", token)
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Bruno Costa", listed[0].CustomerName)

	// Exact status filter
	w = doRequest(r, http.MethodGet, "/api/agendamentos?status=confirmado", "", token)
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	for _, a := range listed {
		assert.Equal(t, models.StatusConfirmed, a.Status)
	}

	// "todos" means no status filter
	w = doRequest(r, http.MethodGet, "/api/agendamentos?status=todos", "", token)
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 3)
}

func TestListAppointments_RequiresAuth(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(r, http.MethodGet, "/api/agendamentos", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCatalog(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(r, http.MethodGet, "/api/servicos", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	out := decodeBody(t, w)
	assert.Len(t, out["services"], 6)
	assert.Len(t, out["timeSlots"], 9)
}
