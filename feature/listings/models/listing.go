package models

// Listing is one real-estate record from the external feed after defaulting.
// Every field is present: strings default to "" and counts/flags to "0".
type Listing struct {
	Code        string `json:"codigo"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`

	// Classification
	Type             string `json:"tipo"`
	SubType          string `json:"subtipo"`
	Purpose          string `json:"transacao"`
	Category         string `json:"finalidade"`
	Standard         string `json:"padrao"`
	LocationStandard string `json:"padrao_localizacao"`

	// Location
	Country      string `json:"pais"`
	State        string `json:"estado"`
	City         string `json:"cidade"`
	Neighborhood string `json:"bairro"`
	Street       string `json:"endereco"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	PostalCode   string `json:"cep"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`

	// Commercial
	SalePrice string `json:"preco_venda"`
	RentPrice string `json:"preco_locacao"`
	CondoFee  string `json:"preco_condominio"`
	OfferType string `json:"tipo_oferta"`
	Publish   string `json:"publicar"`
	ShowPrice string `json:"exibir_preco"`

	// Physical
	UsableArea       string `json:"area_util"`
	TotalArea        string `json:"area_total"`
	AreaUnit         string `json:"unidade_medida"`
	Bedrooms         string `json:"qtd_dormitorios"`
	Bathrooms        string `json:"qtd_banheiros"`
	Suites           string `json:"qtd_suites"`
	ParkingSpaces    string `json:"qtd_vagas"`
	Floor            string `json:"andar"`
	ConstructionYear string `json:"ano_construcao"`

	// Amenities ("1"/"0")
	Pool            string `json:"piscina"`
	Elevator        string `json:"elevador"`
	AirConditioning string `json:"ar_condicionado"`
	Furnished       string `json:"mobiliado"`
	Barbecue        string `json:"churrasqueira"`
	Gym             string `json:"academia"`
	Doorman         string `json:"portaria_24h"`
	Balcony         string `json:"varanda"`

	Realtor Realtor `json:"corretor"`
	Photos  []Photo `json:"fotos"`

	// Bookkeeping, dates as dd/mm/yyyy in the feed
	CreatedDate string `json:"data_cadastro"`
	UpdatedDate string `json:"data_atualizacao"`
	DetailURL   string `json:"url"`
}

// Realtor is the agent responsible for a listing.
type Realtor struct {
	Name   string `json:"nome"`
	Phone  string `json:"telefone"`
	Mobile string `json:"celular"`
	Email  string `json:"email"`
	Photo  string `json:"foto"`
}

// Photo is one picture of a listing, in feed order.
type Photo struct {
	FileName string `json:"nome_arquivo"`
	Type     string `json:"tipo"`
	URL      string `json:"url"`
	Primary  string `json:"principal"`
}

// Key returns the identity key of a listing.
func Key(l Listing) string {
	return l.Code
}
