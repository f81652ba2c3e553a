package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TableName is the listings table shared by the store and the SQL export.
const TableName = "imoveis"

// Row is the normalized, typed form of a Listing and the persisted model.
// Absent numeric, date and classification values are nil.
type Row struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Code        string `gorm:"column:codigo;type:varchar(64);uniqueIndex;not null" json:"codigo"`
	Title       string `gorm:"column:titulo;type:varchar(255)" json:"titulo"`
	Description string `gorm:"column:descricao;type:text" json:"descricao"`

	Type             string  `gorm:"column:tipo;type:varchar(100)" json:"tipo"`
	SubType          string  `gorm:"column:subtipo;type:varchar(100)" json:"subtipo"`
	Purpose          string  `gorm:"column:transacao;type:varchar(50)" json:"transacao"`
	Category         string  `gorm:"column:finalidade;type:varchar(100)" json:"finalidade"`
	Standard         *string `gorm:"column:padrao;type:varchar(50)" json:"padrao"`
	LocationStandard *string `gorm:"column:padrao_localizacao;type:varchar(50)" json:"padrao_localizacao"`

	Country      string   `gorm:"column:pais;type:varchar(100)" json:"pais"`
	State        string   `gorm:"column:estado;type:varchar(50)" json:"estado"`
	City         string   `gorm:"column:cidade;type:varchar(150)" json:"cidade"`
	Neighborhood string   `gorm:"column:bairro;type:varchar(150)" json:"bairro"`
	Street       string   `gorm:"column:logradouro;type:varchar(255)" json:"logradouro"`
	Number       string   `gorm:"column:numero;type:varchar(30)" json:"numero"`
	Complement   string   `gorm:"column:complemento;type:varchar(150)" json:"complemento"`
	PostalCode   string   `gorm:"column:cep;type:varchar(20)" json:"cep"`
	Address      string   `gorm:"column:endereco;type:text" json:"endereco"`
	Latitude     *float64 `gorm:"column:latitude;type:decimal(10,7)" json:"latitude"`
	Longitude    *float64 `gorm:"column:longitude;type:decimal(10,7)" json:"longitude"`

	SalePrice *float64 `gorm:"column:preco_venda;type:decimal(15,2)" json:"preco_venda"`
	RentPrice *float64 `gorm:"column:preco_locacao;type:decimal(15,2)" json:"preco_locacao"`
	CondoFee  *float64 `gorm:"column:preco_condominio;type:decimal(15,2)" json:"preco_condominio"`
	OfferType string   `gorm:"column:tipo_oferta;type:varchar(50)" json:"tipo_oferta"`
	Publish   bool     `gorm:"column:publicar" json:"publicar"`
	ShowPrice bool     `gorm:"column:exibir_preco" json:"exibir_preco"`

	UsableArea       *float64 `gorm:"column:area_util;type:decimal(12,2)" json:"area_util"`
	TotalArea        *float64 `gorm:"column:area_total;type:decimal(12,2)" json:"area_total"`
	AreaUnit         string   `gorm:"column:unidade_medida;type:varchar(20)" json:"unidade_medida"`
	Bedrooms         *int     `gorm:"column:qtd_dormitorios" json:"qtd_dormitorios"`
	Bathrooms        *int     `gorm:"column:qtd_banheiros" json:"qtd_banheiros"`
	Suites           *int     `gorm:"column:qtd_suites" json:"qtd_suites"`
	ParkingSpaces    *int     `gorm:"column:qtd_vagas" json:"qtd_vagas"`
	Floor            *int     `gorm:"column:andar" json:"andar"`
	ConstructionYear *int     `gorm:"column:ano_construcao" json:"ano_construcao"`

	Pool            bool `gorm:"column:piscina" json:"piscina"`
	Elevator        bool `gorm:"column:elevador" json:"elevador"`
	AirConditioning bool `gorm:"column:ar_condicionado" json:"ar_condicionado"`
	Furnished       bool `gorm:"column:mobiliado" json:"mobiliado"`
	Barbecue        bool `gorm:"column:churrasqueira" json:"churrasqueira"`
	Gym             bool `gorm:"column:academia" json:"academia"`
	Doorman         bool `gorm:"column:portaria_24h" json:"portaria_24h"`
	Balcony         bool `gorm:"column:varanda" json:"varanda"`

	RealtorName   string `gorm:"column:corretor_nome;type:varchar(150)" json:"corretor_nome"`
	RealtorPhone  string `gorm:"column:corretor_telefone;type:varchar(50)" json:"corretor_telefone"`
	RealtorMobile string `gorm:"column:corretor_celular;type:varchar(50)" json:"corretor_celular"`
	RealtorEmail  string `gorm:"column:corretor_email;type:varchar(150)" json:"corretor_email"`
	RealtorPhoto  string `gorm:"column:corretor_foto;type:text" json:"corretor_foto"`

	Photos PhotoList `gorm:"column:fotos;type:text" json:"fotos"`

	CreatedDate *time.Time `gorm:"column:data_cadastro;type:date" json:"data_cadastro"`
	UpdatedDate *time.Time `gorm:"column:data_atualizacao;type:date" json:"data_atualizacao"`
	DetailURL   string     `gorm:"column:url_detalhe;type:text" json:"url_detalhe"`

	Active    bool      `gorm:"column:ativo;not null;index" json:"ativo"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Row) TableName() string {
	return TableName
}

// Column is one named value of a Row, in table order.
type Column struct {
	Name  string
	Value any
}

// Columns returns every mapped column except the surrogate id and the
// bookkeeping timestamps. The store writes exactly these columns and the SQL
// export renders exactly these columns, in this order.
func (r Row) Columns() []Column {
	return []Column{
		{"codigo", r.Code},
		{"titulo", r.Title},
		{"descricao", r.Description},
		{"tipo", r.Type},
		{"subtipo", r.SubType},
		{"transacao", r.Purpose},
		{"finalidade", r.Category},
		{"padrao", r.Standard},
		{"padrao_localizacao", r.LocationStandard},
		{"pais", r.Country},
		{"estado", r.State},
		{"cidade", r.City},
		{"bairro", r.Neighborhood},
		{"logradouro", r.Street},
		{"numero", r.Number},
		{"complemento", r.Complement},
		{"cep", r.PostalCode},
		{"endereco", r.Address},
		{"latitude", r.Latitude},
		{"longitude", r.Longitude},
		{"preco_venda", r.SalePrice},
		{"preco_locacao", r.RentPrice},
		{"preco_condominio", r.CondoFee},
		{"tipo_oferta", r.OfferType},
		{"publicar", r.Publish},
		{"exibir_preco", r.ShowPrice},
		{"area_util", r.UsableArea},
		{"area_total", r.TotalArea},
		{"unidade_medida", r.AreaUnit},
		{"qtd_dormitorios", r.Bedrooms},
		{"qtd_banheiros", r.Bathrooms},
		{"qtd_suites", r.Suites},
		{"qtd_vagas", r.ParkingSpaces},
		{"andar", r.Floor},
		{"ano_construcao", r.ConstructionYear},
		{"piscina", r.Pool},
		{"elevador", r.Elevator},
		{"ar_condicionado", r.AirConditioning},
		{"mobiliado", r.Furnished},
		{"churrasqueira", r.Barbecue},
		{"academia", r.Gym},
		{"portaria_24h", r.Doorman},
		{"varanda", r.Balcony},
		{"corretor_nome", r.RealtorName},
		{"corretor_telefone", r.RealtorPhone},
		{"corretor_celular", r.RealtorMobile},
		{"corretor_email", r.RealtorEmail},
		{"corretor_foto", r.RealtorPhoto},
		{"fotos", r.Photos},
		{"data_cadastro", r.CreatedDate},
		{"data_atualizacao", r.UpdatedDate},
		{"url_detalhe", r.DetailURL},
		{"ativo", r.Active},
	}
}

// Assignments returns the mutable columns as an update map. codigo is the
// match key and is left out.
func (r Row) Assignments() map[string]any {
	cols := r.Columns()
	out := make(map[string]any, len(cols))
	for _, c := range cols {
		if c.Name == "codigo" {
			continue
		}
		out[c.Name] = c.Value
	}
	return out
}

// StoredPhoto is the persisted form of a Photo.
type StoredPhoto struct {
	FileName string `json:"nome_arquivo"`
	Type     string `json:"tipo"`
	URL      string `json:"url"`
	Primary  bool   `json:"principal"`
}

// PhotoList is stored as a JSON text column.
type PhotoList []StoredPhoto

// Value implements driver.Valuer.
func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]StoredPhoto(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (p *PhotoList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*p = PhotoList{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("photos: unsupported column type %T", src)
	}
	if len(data) == 0 {
		*p = PhotoList{}
		return nil
	}
	return json.Unmarshal(data, (*[]StoredPhoto)(p))
}
