package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"dsctravel/trip"

	"github.com/ledongthuc/pdf"
)

type ExtractorClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

var extractorClient *ExtractorClient

func InitExtractor() {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}

	extractorClient = &ExtractorClient{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  model,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}

	if extractorClient.apiKey != "" {
		fmt.Println("✅ Extraction (OpenAI) initialized with model:", model)
	} else {
		fmt.Println("⚠️  OPENAI_API_KEY not set — extraction will return simulated data")
	}
}

func GetExtractor() *ExtractorClient {
	return extractorClient
}

// Document is one uploaded file already reduced to text.
type Document struct {
	Name string
	Text string
}

// ExtractDocumentText pulls the text out of an uploaded file. PDFs go
// through a text extractor; anything else is assumed to already be text.
func ExtractDocumentText(filename string, content []byte) (string, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return string(content), nil
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", filename, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF %s: %w", filename, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ─── OpenAI chat completions ──────────────────────────────────────────────────

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete runs one chat-completions round trip and returns the model's
// text answer.
func (c *ExtractorClient) complete(system, user string, temperature float64, maxTokens int, format *responseFormat) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openAI API key not configured")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: format,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST",
		"https://api.openai.com/v1/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error (%d): %s", resp.StatusCode, string(body))
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %v", err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from AI")
	}
	return chat.Choices[0].Message.Content, nil
}

// ExtractTripData sends the document text to the model and parses the
// structured trip it returns. The model is pinned to JSON output; fields it
// could not find simply stay absent, which is fine — every consumer of
// TripData applies its own fallbacks.
func (c *ExtractorClient) ExtractTripData(docs []Document, clientName string) (trip.TripData, error) {
	var data trip.TripData

	if len(docs) == 0 {
		return data, fmt.Errorf("no documents to extract from")
	}

	var parts []string
	for _, d := range docs {
		parts = append(parts, fmt.Sprintf("=== Arquivo: %s ===\n%s", d.Name, d.Text))
	}

	content, err := c.complete(
		"Você é um assistente especializado em extrair dados de orçamentos de viagem. Retorne SEMPRE em formato JSON válido.",
		buildExtractionPrompt(strings.Join(parts, "\n\n"), clientName),
		0.1, 0, &responseFormat{Type: "json_object"})
	if err != nil {
		return data, err
	}

	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return data, fmt.Errorf("AI returned invalid trip JSON: %v", err)
	}

	// The seller's input wins over whatever the model read off the documents.
	if clientName != "" {
		data.Client = clientName
	}

	return data, nil
}

func buildExtractionPrompt(allText, clientName string) string {
	name := clientName
	if name == "" {
		name = "Cliente"
	}

	return fmt.Sprintf(`Analise o seguinte conteúdo de orçamento de viagem e extraia as informações em formato JSON.

CONTEÚDO DOS ARQUIVOS:
%s

INSTRUÇÕES:
- Extraia TODAS as informações disponíveis
- Use o formato JSON exato especificado abaixo
- Se algum campo não estiver disponível, use valores razoáveis ou deixe vazio
- Datas no formato DD/MM ou DD/MM/AAAA
- Valores numéricos sem símbolos de moeda
- Para o campo "cliente", use: "%s"

FORMATO JSON (retorne APENAS JSON, sem texto adicional):
{
  "cliente": "%s",
  "periodo": {"inicio": "DD/MM", "fim": "DD/MM"},
  "voos": [
    {"origem": "Cidade (CÓDIGO)", "destino": "Cidade (CÓDIGO)", "data": "DD/MM", "horario_saida": "HH:MM", "horario_chegada": "HH:MM"}
  ],
  "hoteis": [
    {"cidade": "Cidade", "nome": "Nome do hotel", "noites": 3, "checkin": "DD/MM", "checkout": "DD/MM", "regime": "Tipo de alimentação"}
  ],
  "passeios": [
    {"nome": "Nome do passeio", "valor_por_pessoa": 100, "incluido": false}
  ],
  "pacote_base": {"descricao": "Aéreo + Hotel", "valor": 5000}
}`, allText, name, name)
}

// MockTripData is the simulated extraction used when the AI is not
// configured or fails: a recognizable Peru sample the panel can render end
// to end.
func MockTripData(clientName string) trip.TripData {
	if clientName == "" {
		clientName = "Cliente (dados simulados)"
	}

	return trip.TripData{
		Client: clientName,
		Period: &trip.Period{Start: "15/02", End: "22/02"},
		Flights: []trip.Flight{
			{Origin: "São Paulo (GRU)", Destination: "Lima (LIM)", Date: "15/02", DepartureTime: "09:15", ArrivalTime: "14:30"},
			{Origin: "Lima (LIM)", Destination: "Cusco (CUZ)", Date: "18/02", DepartureTime: "08:40", ArrivalTime: "10:05"},
			{Origin: "Cusco (CUZ)", Destination: "Lima (LIM)", Date: "22/02", DepartureTime: "11:20", ArrivalTime: "12:45"},
			{Origin: "Lima (LIM)", Destination: "São Paulo (GRU)", Date: "22/02", DepartureTime: "15:05", ArrivalTime: "23:40"},
		},
		Hotels: []trip.Hotel{
			{City: "Lima", Name: "Hotel (dados simulados)", Nights: 3, CheckIn: "15/02", CheckOut: "18/02", MealPlan: "Café da manhã"},
			{City: "Cusco", Name: "Hotel (dados simulados)", Nights: 4, CheckIn: "18/02", CheckOut: "22/02", MealPlan: "Café da manhã"},
		},
		Tours: []trip.Tour{
			{Name: "City tour Lima", PricePerPerson: 180, Included: true},
			{Name: "Machu Picchu (dia inteiro)", PricePerPerson: 950, Included: false},
		},
		BasePackage: &trip.BasePackage{Description: "Aéreo + Hotel", Value: 9800},
		Itinerary: []trip.ItineraryDay{
			{Day: 1, Date: "15/02", Title: "Chegada a Lima", Landmark: "Lima cityscape", Schedule: "Chegada às 14:30",
				Description: "Recepção no aeroporto e transfer ao hotel em Miraflores.\n\nApós o check-in, caminhe pelo Malecón e aproveite o pôr do sol sobre o Pacífico.",
				Transfer:    "a-incluir", Tip: "Miraflores é seguro e perfeito para a primeira caminhada."},
			{Day: 2, Date: "16/02", Title: "City tour Lima", Landmark: "Plaza Mayor",
				Description: "Manhã no centro histórico: Plaza Mayor, Catedral e Convento de San Francisco.\n\n✓ City tour Lima incluído."},
			{Day: 3, Date: "17/02", Title: "Miraflores e Barranco", Landmark: "Barranco",
				Description: "Dia livre entre os bairros de Miraflores e Barranco, com suas galerias e cafés.",
				Tip:         "Prove a culinária local num restaurante à beira-mar."},
			{Day: 4, Date: "18/02", Title: "Voo a Cusco", Landmark: "Cusco cityscape", Schedule: "Saída às 08:40",
				Description: "Voo matinal a Cusco e tarde de aclimatação à altitude.\n\nJante com calma e hidrate-se bem."},
			{Day: 5, Date: "19/02", Title: "City tour Cusco", Landmark: "Sacsayhuamán",
				Description: "Centro histórico de Cusco, Qorikancha e a fortaleza de Sacsayhuamán."},
			{Day: 6, Date: "20/02", Title: "Machu Picchu", Landmark: "Machu Picchu",
				Description: "Dia inteiro em Machu Picchu, com trem panorâmico desde o Vale Sagrado.",
				Tip:         "Leve protetor solar e água; a visita rende o dia todo."},
			{Day: 7, Date: "21/02", Title: "Vale Sagrado", Landmark: "Pisac",
				Description: "Mercado de Pisac e as terraças de Ollantaytambo no Vale Sagrado."},
			{Day: 8, Date: "22/02", Title: "Retorno", Landmark: "Cusco airport", Schedule: "Saída às 11:20",
				Description: "Check-out, transfer ao aeroporto e conexão em Lima para o voo de volta.",
				Transfer:    "a-incluir", Tip: "Faça o check-in da conexão com antecedência."},
		},
	}
}
