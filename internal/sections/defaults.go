package sections

import (
	"convite-premium-backend/internal/models"
)

// templates is the built-in registry of section templates. Default content is
// in pt-BR, the product's primary market; the public renderer localizes form
// messages separately.
var templates = map[models.SectionType]TemplateDefinition{
	models.SplashSection: {
		Type:        models.SplashSection,
		Name:        "Abertura",
		Description: "Tela de boas-vindas exibida antes do convite",
		Icon:        "sparkles",
		DefaultData: models.ContentMap{
			"title":          "Você está convidado!",
			"subtitle":       "Toque para abrir o convite",
			"buttonText":     "Abrir convite",
			"backgroundUrl":  "",
			"overlayColor":   "#00000066",
			"animateEntrance": true,
		},
		Fields: []FieldDescriptor{
			{Key: "title", Kind: FieldText, Label: "Título", Required: true},
			{Key: "subtitle", Kind: FieldText, Label: "Subtítulo"},
			{Key: "buttonText", Kind: FieldText, Label: "Texto do botão"},
			{Key: "backgroundUrl", Kind: FieldURL, Label: "Imagem de fundo"},
			{Key: "overlayColor", Kind: FieldColor, Label: "Cor de sobreposição"},
			{Key: "animateEntrance", Kind: FieldBool, Label: "Animar entrada"},
		},
	},
	models.HeroSection: {
		Type:        models.HeroSection,
		Name:        "Destaque",
		Description: "Nomes, data e imagem principal do evento",
		Icon:        "star",
		DefaultData: models.ContentMap{
			"title":     "Maria & João",
			"subtitle":  "Vamos nos casar",
			"date":      "",
			"location":  "",
			"imageUrl":  "",
			"alignment": "center",
		},
		Fields: []FieldDescriptor{
			{Key: "title", Kind: FieldText, Label: "Título", Required: true},
			{Key: "subtitle", Kind: FieldText, Label: "Subtítulo"},
			{Key: "date", Kind: FieldDateTime, Label: "Data do evento"},
			{Key: "location", Kind: FieldText, Label: "Local"},
			{Key: "imageUrl", Kind: FieldURL, Label: "Imagem"},
			{Key: "alignment", Kind: FieldEnum, Label: "Alinhamento", Options: []string{"left", "center", "right"}},
		},
	},
	models.AgendaSection: {
		Type:        models.AgendaSection,
		Name:        "Programação",
		Description: "Linha do tempo dos momentos do evento",
		Icon:        "calendar",
		DefaultData: models.ContentMap{
			"title": "Programação",
			"items": []interface{}{
				map[string]interface{}{"time": "16:00", "label": "Cerimônia"},
				map[string]interface{}{"time": "18:00", "label": "Recepção"},
				map[string]interface{}{"time": "20:00", "label": "Festa"},
			},
		},
		Fields: []FieldDescriptor{
			{Key: "title", Kind: FieldText, Label: "Título"},
			{Key: "items", Kind: FieldList, Label: "Momentos", ItemFields: []FieldDescriptor{
				{Key: "time", Kind: FieldText, Label: "Horário"},
				{Key: "label", Kind: FieldText, Label: "Descrição"},
			}},
		},
	},
	models.RSVPSection: {
		Type:        models.RSVPSection,
		Name:        "Confirmação de presença",
		Description: "Formulário de RSVP com contato do convidado",
		Icon:        "check-circle",
		DefaultData: models.ContentMap{
			"title":        "Confirme sua presença",
			"description":  "Responda até a data limite",
			"buttonText":   "Confirmar",
			"askEmail":     true,
			"askPhone":     false,
			"askGuests":    true,
			"maxGuests":    5,
			"deadline":     "",
		},
		Fields: []FieldDescriptor{
			{Key: "title", Kind: FieldText, Label: "Título"},
			{Key: "description", Kind: FieldMultiline, Label: "Descrição"},
			{Key: "buttonText", Kind: FieldText, Label: "Texto do botão"},
			{Key: "askEmail", Kind: FieldBool, Label: "Pedir e-mail"},
			{Key: "askPhone", Kind: FieldBool, Label: "Pedir telefone"},
			{Key: "askGuests", Kind: FieldBool, Label: "Pedir acompanhantes"},
			{Key: "maxGuests", Kind: FieldSize, Label: "Máximo de acompanhantes", Options: []string{"1", "2", "5", "10"}},
			{Key: "deadline", Kind: FieldDateTime, Label: "Data limite"},
		},
	},
	models.GuestbookSection: {
		Type:        models.GuestbookSection,
		Name:        "Mural de recados",
		Description: "Mensagens deixadas pelos convidados",
		Icon:        "message-circle",
		DefaultData: models.ContentMap{
			"title":       "Deixe seu recado",
			"placeholder": "Escreva uma mensagem carinhosa...",
			"buttonText":  "Enviar",
		},
		Fields: []FieldDescriptor{
			{Key: "title", Kind: FieldText, Label: "Título"},
			{Key: "placeholder", Kind: FieldText, Label: "Texto de exemplo"},
			{Key: "buttonText", Kind: FieldText, Label: "Texto do botão"},
		},
	},
	models.CountdownSection: {
		Type:        models.CountdownSection,
		Name:        "Contagem regressiva",
		Description: "Contador até a data do evento",
		Icon:        "clock",
		DefaultData: models.ContentMap{
			"title":      "Falta pouco!",
			"targetDate": "",
			"showDays":   true,
			"showHours":  true,
		},
		Fields: []FieldDescriptor{
			{Key: "title", Kind: FieldText, Label: "Título"},
			{Key: "targetDate", Kind: FieldDateTime, Label: "Data alvo", Required: true},
			{Key: "showDays", Kind: FieldBool, Label: "Mostrar dias"},
			{Key: "showHours", Kind: FieldBool, Label: "Mostrar horas"},
		},
	},
	models.SeparatorSection: {
		Type:        models.SeparatorSection,
		Name:        "Separador",
		Description: "Espaço ou divisor decorativo entre seções",
		Icon:        "minus",
		DefaultData: models.ContentMap{
			"style":  "line",
			"height": "48",
		},
		Fields: []FieldDescriptor{
			{Key: "style", Kind: FieldEnum, Label: "Estilo", Options: []string{"line", "space", "ornament"}},
			{Key: "height", Kind: FieldSize, Label: "Altura", Options: []string{"24", "48", "96"}},
		},
	},
	models.NavSection: {
		Type:        models.NavSection,
		Name:        "Menu",
		Description: "Navegação flutuante entre seções",
		Icon:        "menu",
		DefaultData: models.ContentMap{
			"position": "bottom",
			"items":    []interface{}{},
		},
		Fields: []FieldDescriptor{
			{Key: "position", Kind: FieldEnum, Label: "Posição", Options: []string{"top", "bottom"}},
			{Key: "items", Kind: FieldList, Label: "Itens", ItemFields: []FieldDescriptor{
				{Key: "label", Kind: FieldText, Label: "Rótulo"},
				{Key: "target", Kind: FieldText, Label: "Seção alvo"},
			}},
		},
	},
	models.GiftsSection: {
		Type:        models.GiftsSection,
		Name:        "Lista de presentes",
		Description: "Links para lista de presentes ou PIX",
		Icon:        "gift",
		DefaultData: models.ContentMap{
			"title":       "Lista de presentes",
			"description": "Sua presença é o maior presente",
			"items":       []interface{}{},
		},
		Fields: []FieldDescriptor{
			{Key: "title", Kind: FieldText, Label: "Título"},
			{Key: "description", Kind: FieldMultiline, Label: "Descrição"},
			{Key: "items", Kind: FieldList, Label: "Presentes", ItemFields: []FieldDescriptor{
				{Key: "label", Kind: FieldText, Label: "Nome"},
				{Key: "url", Kind: FieldURL, Label: "Link"},
				{Key: "imageUrl", Kind: FieldURL, Label: "Imagem"},
			}},
		},
	},
	models.CustomSection: {
		Type:        models.CustomSection,
		Name:        "Personalizada",
		Description: "Bloco livre com HTML próprio",
		Icon:        "code",
		DefaultData: models.ContentMap{
			"html": "<p>Conteúdo personalizado</p>",
		},
		Fields: []FieldDescriptor{
			{Key: "html", Kind: FieldMultiline, Label: "HTML"},
		},
	},
}
