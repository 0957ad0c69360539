package entity

// Sequences contadores persistidos para la numeración de documentos.
// Solo crecen: borrar o recargar no reutiliza números.
type Sequences struct {
	Quote   int `json:"quote"`
	Invoice int `json:"invoice"`
}

// InventoryState raíz del agregado: se carga y se guarda como un único snapshot.
type InventoryState struct {
	Version          int64            `json:"version"`
	Articles         []Article        `json:"articles"`
	Sections         []Section        `json:"sections"`
	Customers        []Customer       `json:"customers"`
	Quotes           []Quote          `json:"quotes"`
	Invoices         []Invoice        `json:"invoices"`
	RecentActivities []RecentActivity `json:"recentActivities"`
	Sequences        Sequences        `json:"sequences"`
}

// NewInventoryState estado vacío con colecciones inicializadas (se serializan como [] y no null).
func NewInventoryState() *InventoryState {
	return &InventoryState{
		Articles:         []Article{},
		Sections:         []Section{},
		Customers:        []Customer{},
		Quotes:           []Quote{},
		Invoices:         []Invoice{},
		RecentActivities: []RecentActivity{},
	}
}

// Clone copia profunda; las transacciones trabajan sobre la copia.
func (s *InventoryState) Clone() *InventoryState {
	out := &InventoryState{
		Version:          s.Version,
		Articles:         append([]Article{}, s.Articles...),
		Sections:         append([]Section{}, s.Sections...),
		Customers:        append([]Customer{}, s.Customers...),
		Quotes:           make([]Quote, len(s.Quotes)),
		Invoices:         make([]Invoice, len(s.Invoices)),
		RecentActivities: append([]RecentActivity{}, s.RecentActivities...),
		Sequences:        s.Sequences,
	}
	for i, q := range s.Quotes {
		q.Items = append([]InvoiceItem{}, q.Items...)
		out.Quotes[i] = q
	}
	for i, inv := range s.Invoices {
		inv.Items = append([]InvoiceItem{}, inv.Items...)
		if inv.ConfirmedAt != nil {
			t := *inv.ConfirmedAt
			inv.ConfirmedAt = &t
		}
		if inv.CancelledAt != nil {
			t := *inv.CancelledAt
			inv.CancelledAt = &t
		}
		out.Invoices[i] = inv
	}
	return out
}

// FindArticle devuelve un puntero al artículo dentro del estado, o nil.
func (s *InventoryState) FindArticle(id string) *Article {
	for i := range s.Articles {
		if s.Articles[i].ID == id {
			return &s.Articles[i]
		}
	}
	return nil
}

// FindArticleByCode busca por código (llave de negocio).
func (s *InventoryState) FindArticleByCode(code string) *Article {
	for i := range s.Articles {
		if s.Articles[i].Code == code {
			return &s.Articles[i]
		}
	}
	return nil
}

// FindSection devuelve un puntero a la sección, o nil.
func (s *InventoryState) FindSection(id string) *Section {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i]
		}
	}
	return nil
}

// FindCustomer devuelve un puntero al cliente, o nil.
func (s *InventoryState) FindCustomer(id string) *Customer {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return &s.Customers[i]
		}
	}
	return nil
}

// FindQuote devuelve un puntero a la cotización, o nil.
func (s *InventoryState) FindQuote(id string) *Quote {
	for i := range s.Quotes {
		if s.Quotes[i].ID == id {
			return &s.Quotes[i]
		}
	}
	return nil
}

// FindInvoice devuelve un puntero a la factura, o nil.
func (s *InventoryState) FindInvoice(id string) *Invoice {
	for i := range s.Invoices {
		if s.Invoices[i].ID == id {
			return &s.Invoices[i]
		}
	}
	return nil
}
