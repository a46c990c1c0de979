// AngelaMos | 2026
// dto.go

package generator

// Wire types for the generation API.

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Tools             []tool    `json:"tools,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch map[string]any `json:"google_search"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingAttributions []groundingAttribution `json:"groundingAttributions"`
}

type groundingAttribution struct {
	Web webSource `json:"web"`
}

type webSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Source is a filtered attribution exposed to the client.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// API surface for the drafting endpoint.

type GenerateSOWRequest struct {
	ProjectName string `json:"projectName" validate:"required,min=1,max=200"`
	ClientName  string `json:"clientName"  validate:"omitempty,max=200"`
	ProjectType string `json:"projectType" validate:"required"`
	DepthFeet   int    `json:"depthFeet"   validate:"required,gt=0"`
	SoilType    string `json:"soilType"    validate:"required"`
}
