package export_bookings

// ContentType MIME-тип выгружаемой книги
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Request модель запроса выгрузки
type Request struct {
	StartDate string // YYYY-MM-DD, включительно
	EndDate   string // YYYY-MM-DD, включительно
}

// Response готовый файл
type Response struct {
	FileName      string
	ASCIIFileName string // для клиентов без поддержки filename*
	Content       []byte
	Rows          int
}

// Row строка таблицы выгрузки
type Row struct {
	Date   string
	Name   string
	Phone  string
	Status string
}
