package catalog

// Test describes one behavioral test offered in the funnel. The Slug is the
// route-addressable identifier; APICode is the two-letter code the scoring
// API expects.
type Test struct {
	Slug        string
	Title       string
	APICode     string
	Description string
	Icon        string
	Color       string
	CTALabel    string
	Headline    string
	UnlockPitch string
}

var tests = []Test{
	{
		Slug:        "personalidade",
		Title:       "Teste de Personalidade",
		APICode:     "PE",
		Description: "Mapeie sua essência e entenda como você processa o mundo ao seu redor.",
		Icon:        "🎭",
		Color:       "indigo",
		CTALabel:    "Descobrir minha essência",
		Headline:    "Descubra sua verdadeira essência",
		UnlockPitch: "Como transformar seu perfil em hábitos que aumentam sua confiança, foco e resultados no dia a dia?",
	},
	{
		Slug:        "carreira",
		Title:       "Teste de Carreira",
		APICode:     "CA",
		Description: "Descubra seu perfil profissional e os caminhos para sua próxima promoção.",
		Icon:        "💼",
		Color:       "emerald",
		CTALabel:    "Descobrir meu perfil profissional",
		Headline:    "Destrave sua evolução profissional",
		UnlockPitch: "Qual é o melhor caminho de carreira para o seu perfil — e como ganhar mais e ser promovido?",
	},
	{
		Slug:        "relacionamento",
		Title:       "Teste de Relacionamento",
		APICode:     "AG",
		Description: "Entenda seus padrões afetivos e como você se conecta com as pessoas.",
		Icon:        "💞",
		Color:       "rose",
		CTALabel:    "Descobrir meu padrão afetivo",
		Headline:    "Encontre o seu match ideal",
		UnlockPitch: "Como usar seu perfil para melhorar a comunicação, reduzir atritos e fortalecer seus relacionamentos?",
	},
	{
		Slug:        "qi",
		Title:       "Teste de QI",
		APICode:     "QI",
		Description: "Avalie seu raciocínio lógico e seu estilo cognitivo em poucos minutos.",
		Icon:        "🧠",
		Color:       "amber",
		CTALabel:    "Avaliar meu raciocínio",
		Headline:    "Avalie seu raciocínio lógico",
		UnlockPitch: "O que seu resultado revela sobre seu raciocínio — e quais estratégias elevam sua performance em provas e trabalho?",
	},
}

var bySlug = func() map[string]Test {
	m := make(map[string]Test, len(tests))
	for _, t := range tests {
		m[t.Slug] = t
	}
	return m
}()

// Lookup returns the test configuration for a slug.
func Lookup(slug string) (Test, bool) {
	t, ok := bySlug[slug]
	return t, ok
}

// All returns every test in display order.
func All() []Test {
	out := make([]Test, len(tests))
	copy(out, tests)
	return out
}

// Slugs returns the known slugs as a comma-separated list, for help and
// error text.
func Slugs() string {
	out := ""
	for i, t := range tests {
		if i > 0 {
			out += ", "
		}
		out += t.Slug
	}
	return out
}
