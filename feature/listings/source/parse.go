package source

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"listing-sync/core/reconcile"
	"listing-sync/core/utils"
	"listing-sync/feature/listings/models"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	listingElement   = "imovel"
	containerElement = "imoveis"
)

// rawListing mirrors one <imovel> element. Pointers distinguish an omitted
// element from an empty one.
type rawListing struct {
	Code        *string `xml:"codigo"`
	Title       *string `xml:"titulo"`
	Description *string `xml:"descricao"`

	Type             *string `xml:"tipo"`
	SubType          *string `xml:"subtipo"`
	Purpose          *string `xml:"transacao"`
	Category         *string `xml:"finalidade"`
	Standard         *string `xml:"padrao"`
	LocationStandard *string `xml:"padrao_localizacao"`

	Country      *string `xml:"pais"`
	State        *string `xml:"estado"`
	City         *string `xml:"cidade"`
	Neighborhood *string `xml:"bairro"`
	Street       *string `xml:"endereco"`
	Number       *string `xml:"numero"`
	Complement   *string `xml:"complemento"`
	PostalCode   *string `xml:"cep"`
	Latitude     *string `xml:"latitude"`
	Longitude    *string `xml:"longitude"`

	SalePrice *string `xml:"preco_venda"`
	RentPrice *string `xml:"preco_locacao"`
	CondoFee  *string `xml:"preco_condominio"`
	OfferType *string `xml:"tipo_oferta"`
	Publish   *string `xml:"publicar"`
	ShowPrice *string `xml:"exibir_preco"`

	UsableArea       *string `xml:"area_util"`
	TotalArea        *string `xml:"area_total"`
	AreaUnit         *string `xml:"unidade_medida"`
	Bedrooms         *string `xml:"qtd_dormitorios"`
	Bathrooms        *string `xml:"qtd_banheiros"`
	Suites           *string `xml:"qtd_suites"`
	ParkingSpaces    *string `xml:"qtd_vagas"`
	Floor            *string `xml:"andar"`
	ConstructionYear *string `xml:"ano_construcao"`

	Pool            *string `xml:"piscina"`
	Elevator        *string `xml:"elevador"`
	AirConditioning *string `xml:"ar_condicionado"`
	Furnished       *string `xml:"mobiliado"`
	Barbecue        *string `xml:"churrasqueira"`
	Gym             *string `xml:"academia"`
	Doorman         *string `xml:"portaria_24h"`
	Balcony         *string `xml:"varanda"`

	Realtor *rawRealtor `xml:"corretor"`
	Photos  []rawPhoto  `xml:"fotos>foto"`

	CreatedDate *string `xml:"data_cadastro"`
	UpdatedDate *string `xml:"data_atualizacao"`
	DetailURL   *string `xml:"url"`
}

type rawRealtor struct {
	Name   *string `xml:"nome"`
	Phone  *string `xml:"telefone"`
	Mobile *string `xml:"celular"`
	Email  *string `xml:"email"`
	Photo  *string `xml:"foto"`
}

type rawPhoto struct {
	FileName *string `xml:"nome_arquivo"`
	Type     *string `xml:"tipo"`
	URL      *string `xml:"url"`
	Primary  *string `xml:"principal"`
}

// document accepts <imovel> children directly under the root or wrapped in
// an <imoveis> container.
type document struct {
	Listings  []rawListing `xml:"imovel"`
	Container []struct {
		Listings []rawListing `xml:"imovel"`
	} `xml:"imoveis"`
}

// Parse decodes an XML feed into defaulted listings. Entries without a code or
// a title are dropped and counted in skipped. A document with no listings is
// valid and yields an empty slice.
func Parse(r io.Reader) (listings []models.Listing, skipped int, err error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	root, err := rootElement(dec)
	if err != nil {
		return nil, 0, &reconcile.ParseError{Format: "xml", Err: err}
	}

	var raws []rawListing
	if root.Name.Local == listingElement {
		var one rawListing
		if err := dec.DecodeElement(&one, &root); err != nil {
			return nil, 0, &reconcile.ParseError{Format: "xml", Err: err}
		}
		raws = append(raws, one)
	} else {
		var doc document
		if err := dec.DecodeElement(&doc, &root); err != nil {
			return nil, 0, &reconcile.ParseError{Format: "xml", Err: err}
		}
		raws = append(raws, doc.Listings...)
		for _, c := range doc.Container {
			raws = append(raws, c.Listings...)
		}
	}

	listings = make([]models.Listing, 0, len(raws))
	for i, raw := range raws {
		l := raw.listing()
		if l.Code == "" || l.Title == "" {
			skipped++
			zap.L().Debug("Skipping feed entry without code or title",
				zap.Int("position", i), zap.String("code", l.Code))
			continue
		}
		listings = append(listings, l)
	}
	return listings, skipped, nil
}

func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, fmt.Errorf("document has no root element")
			}
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

// charsetReader lets feeds declare latin-1 or windows-1252 encodings.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

func str(p *string) string { return utils.OrDefault(p, "") }
func num(p *string) string { return utils.OrDefault(p, "0") }

func (r rawListing) listing() models.Listing {
	l := models.Listing{
		Code:        str(r.Code),
		Title:       str(r.Title),
		Description: str(r.Description),

		Type:             str(r.Type),
		SubType:          str(r.SubType),
		Purpose:          str(r.Purpose),
		Category:         str(r.Category),
		Standard:         str(r.Standard),
		LocationStandard: str(r.LocationStandard),

		Country:      str(r.Country),
		State:        str(r.State),
		City:         str(r.City),
		Neighborhood: str(r.Neighborhood),
		Street:       str(r.Street),
		Number:       str(r.Number),
		Complement:   str(r.Complement),
		PostalCode:   str(r.PostalCode),
		Latitude:     str(r.Latitude),
		Longitude:    str(r.Longitude),

		SalePrice: num(r.SalePrice),
		RentPrice: num(r.RentPrice),
		CondoFee:  num(r.CondoFee),
		OfferType: str(r.OfferType),
		Publish:   num(r.Publish),
		ShowPrice: num(r.ShowPrice),

		UsableArea:       num(r.UsableArea),
		TotalArea:        num(r.TotalArea),
		AreaUnit:         str(r.AreaUnit),
		Bedrooms:         num(r.Bedrooms),
		Bathrooms:        num(r.Bathrooms),
		Suites:           num(r.Suites),
		ParkingSpaces:    num(r.ParkingSpaces),
		Floor:            num(r.Floor),
		ConstructionYear: num(r.ConstructionYear),

		Pool:            num(r.Pool),
		Elevator:        num(r.Elevator),
		AirConditioning: num(r.AirConditioning),
		Furnished:       num(r.Furnished),
		Barbecue:        num(r.Barbecue),
		Gym:             num(r.Gym),
		Doorman:         num(r.Doorman),
		Balcony:         num(r.Balcony),

		CreatedDate: str(r.CreatedDate),
		UpdatedDate: str(r.UpdatedDate),
		DetailURL:   str(r.DetailURL),
	}

	if r.Realtor != nil {
		l.Realtor = models.Realtor{
			Name:   str(r.Realtor.Name),
			Phone:  str(r.Realtor.Phone),
			Mobile: str(r.Realtor.Mobile),
			Email:  str(r.Realtor.Email),
			Photo:  str(r.Realtor.Photo),
		}
	}

	l.Photos = make([]models.Photo, 0, len(r.Photos))
	for _, p := range r.Photos {
		l.Photos = append(l.Photos, models.Photo{
			FileName: str(p.FileName),
			Type:     str(p.Type),
			URL:      str(p.URL),
			Primary:  num(p.Primary),
		})
	}
	return l
}
