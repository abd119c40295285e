package api

// RecordResponse представляет запись так, как её возвращает сервер
type RecordResponse struct {
	ID        int64  `json:"id"`                  // серверный идентификатор
	Name      string `json:"name"`                // название препарата
	Dose      string `json:"dose"`                // дозировка
	Form      string `json:"form"`                // форма выпуска
	Expiry    string `json:"expiry"`              // срок годности (YYYY-MM-DD или YYYY-MM)
	PhotoURI  string `json:"photoUri"`            // сетевая ссылка на фото
	ClientRef string `json:"clientRef,omitempty"` // UUID, переданный клиентом при создании
}

// CreateRecordRequest представляет запрос POST /records
type CreateRecordRequest struct {
	UserID    int64  `json:"userId"`
	Name      string `json:"name"`
	Dose      string `json:"dose,omitempty"`
	Form      string `json:"form,omitempty"`
	Expiry    string `json:"expiry,omitempty"`
	PhotoURI  string `json:"photoUri,omitempty"`
	ClientRef string `json:"clientRef,omitempty"`
}

// UpdateRecordRequest представляет запрос PATCH /records/{id}.
// Nil означает "поле не меняется".
type UpdateRecordRequest struct {
	Name     *string `json:"name,omitempty"`
	Dose     *string `json:"dose,omitempty"`
	Form     *string `json:"form,omitempty"`
	Expiry   *string `json:"expiry,omitempty"`
	PhotoURI *string `json:"photoUri,omitempty"`
}

// HealthResponse представляет ответ GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
