package seeder

import (
	"context"
	"encoding/json"

	"vitrine/internal/database"
)

type CategoriesSeeder struct{}

func (CategoriesSeeder) Name() string { return "categories" }

func (CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	parents := []struct {
		Name string
		Icon string
		Slug string
	}{
		{Name: "Vestidos", Icon: "dress", Slug: "vestidos"},
		{Name: "Malas", Icon: "bag", Slug: "malas"},
		{Name: "Calçado", Icon: "shoe", Slug: "calcado"},
		{Name: "Camisas", Icon: "shirt", Slug: "camisas"},
		{Name: "Acessórios", Icon: "accessory", Slug: "acessorios"},
	}

	for _, it := range parents {
		_, err := db.Exec(ctx,
			`INSERT INTO categories (name, icon, slug) VALUES ($1, $2, $3) ON CONFLICT (slug) DO NOTHING`,
			it.Name, it.Icon, it.Slug,
		)
		if err != nil {
			return err
		}
	}

	subs := []struct {
		Name       string
		Slug       string
		ParentSlug string
	}{
		{Name: "Vestidos Longos", Slug: "vestidos-longos", ParentSlug: "vestidos"},
		{Name: "Vestidos Curtos", Slug: "vestidos-curtos", ParentSlug: "vestidos"},
		{Name: "Malas de Mão", Slug: "malas-de-mao", ParentSlug: "malas"},
		{Name: "Malas de Viagem", Slug: "malas-de-viagem", ParentSlug: "malas"},
		{Name: "Ténis", Slug: "tenis", ParentSlug: "calcado"},
		{Name: "Cintos", Slug: "cintos", ParentSlug: "acessorios"},
	}

	for _, it := range subs {
		_, err := db.Exec(ctx,
			`INSERT INTO categories (name, slug, parent_id)
			 SELECT $1, $2, id FROM categories WHERE slug = $3
			 ON CONFLICT (slug) DO NOTHING`,
			it.Name, it.Slug, it.ParentSlug,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

type ProductsSeeder struct{}

func (ProductsSeeder) Name() string { return "products" }

type seedProduct struct {
	Name         map[string]string
	Description  map[string]string
	Price        float64
	Promo        *float64
	CategorySlug string
	SubSlug      string
	Colors       []string
	Sizes        []string
	Stock        int
	Images       []string
}

func promo(v float64) *float64 { return &v }

// textArray keeps NOT NULL text[] columns happy when a seed entry omits the field.
func textArray(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func (ProductsSeeder) Run(ctx context.Context, db database.DB) error {
	items := []seedProduct{
		{
			Name:         map[string]string{"pt": "Mala de Couro Preta", "en": "Black Leather Bag", "fr": "Sac en Cuir Noir", "de": "Schwarze Ledertasche"},
			Description:  map[string]string{"pt": "Mala em couro genuíno com fecho magnético", "en": "Genuine leather bag with magnetic clasp"},
			Price:        249.9,
			Promo:        promo(199.9),
			CategorySlug: "malas",
			SubSlug:      "malas-de-mao",
			Colors:       []string{"Preto"},
			Stock:        12,
			Images:       []string{"/img/mala-couro-preta-1.jpg", "/img/mala-couro-preta-2.jpg"},
		},
		{
			Name:         map[string]string{"pt": "Mala de Viagem Azul", "en": "Blue Travel Bag"},
			Description:  map[string]string{"pt": "Mala espaçosa para viagens longas"},
			Price:        329.0,
			CategorySlug: "malas",
			SubSlug:      "malas-de-viagem",
			Colors:       []string{"Azul"},
			Stock:        5,
			Images:       []string{"/img/mala-viagem-azul.jpg"},
		},
		{
			Name:         map[string]string{"pt": "Vestido Longo Floral", "en": "Long Floral Dress", "fr": "Robe Longue Fleurie"},
			Description:  map[string]string{"pt": "Vestido longo em viscose com padrão floral", "en": "Long viscose dress with floral print"},
			Price:        119.9,
			Promo:        promo(89.9),
			CategorySlug: "vestidos",
			SubSlug:      "vestidos-longos",
			Colors:       []string{"Vermelho", "Branco"},
			Sizes:        []string{"S", "M", "L"},
			Stock:        20,
			Images:       []string{"/img/vestido-longo-floral.jpg"},
		},
		{
			Name:         map[string]string{"pt": "Vestido Curto Preto", "en": "Short Black Dress"},
			Price:        79.9,
			CategorySlug: "vestidos",
			SubSlug:      "vestidos-curtos",
			Colors:       []string{"Preto"},
			Sizes:        []string{"XS", "S", "M"},
			Stock:        0, // out of stock, still searchable
			Images:       []string{"/img/vestido-curto-preto.jpg"},
		},
		{
			Name:         map[string]string{"pt": "Ténis de Corrida", "en": "Running Sneakers", "de": "Laufschuhe"},
			Description:  map[string]string{"pt": "Ténis leve com sola amortecida", "en": "Lightweight sneaker with cushioned sole"},
			Price:        159.9,
			CategorySlug: "calcado",
			SubSlug:      "tenis",
			Colors:       []string{"Branco", "Preto"},
			Sizes:        []string{"38", "39", "40", "41", "42"},
			Stock:        30,
			Images:       []string{"/img/tenis-corrida.jpg"},
		},
		{
			Name:         map[string]string{"en": "Oxford Shirt", "fr": "Chemise Oxford"},
			Description:  map[string]string{"en": "Classic oxford shirt in organic cotton"},
			Price:        59.9,
			CategorySlug: "camisas",
			Colors:       []string{"Azul", "Branco"},
			Sizes:        []string{"M", "L", "XL"},
			Stock:        14,
			Images:       []string{"/img/camisa-oxford.jpg"},
		},
		{
			Name:         map[string]string{"pt": "Cinto de Couro Castanho", "en": "Brown Leather Belt"},
			Price:        39.9,
			CategorySlug: "acessorios",
			SubSlug:      "cintos",
			Colors:       []string{"Castanho"},
			Sizes:        []string{"85", "90", "95"},
			Stock:        25,
			Images:       []string{"/img/cinto-couro.jpg"},
		},
		{
			// no name in any locale: display falls back to the placeholder
			Name:         map[string]string{},
			Price:        9.9,
			CategorySlug: "acessorios",
			Stock:        3,
		},
	}

	for _, it := range items {
		nameJSON, err := json.Marshal(it.Name)
		if err != nil {
			return err
		}
		descJSON, err := json.Marshal(it.Description)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			`INSERT INTO products
				(name, description, price, promotional_price, category_id, subcategory_id, colors, sizes, stock, images)
			 SELECT $1::jsonb, $2::jsonb, $3, $4,
				(SELECT id FROM categories WHERE slug = $5),
				(SELECT id FROM categories WHERE slug = NULLIF($6, '')),
				$7, $8, $9, $10
			 WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1::jsonb)`,
			string(nameJSON), string(descJSON), it.Price, it.Promo,
			it.CategorySlug, it.SubSlug,
			textArray(it.Colors), textArray(it.Sizes), it.Stock, textArray(it.Images),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
