// Package content - статичные тексты дашборда: обзор участка, справочник и методика.
package content

// Stat - показатель на главной странице
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note,omitempty"`
}

// Parameter - геофизический параметр, который учитывает методика
type Parameter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Overview struct {
	Title      string      `json:"title"`
	StudyArea  string      `json:"study_area"`
	Intro      string      `json:"intro"`
	Parameters []Parameter `json:"parameters"`
	Stats      []Stat      `json:"stats"`
	Notice     string      `json:"notice"`
}

type Article struct {
	Title        string   `json:"title"`
	ImageURL     string   `json:"image_url,omitempty"`
	ImageCaption string   `json:"image_caption,omitempty"`
	Paragraphs   []string `json:"paragraphs"`
}

type EvacuationStep struct {
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
}

type Education struct {
	PGA        Article          `json:"pga"`
	Evacuation []EvacuationStep `json:"evacuation"`
}

// Methodology описывает взвешенное наложение. Только текст: классификатор его не реализует
type Methodology struct {
	Method  string `json:"method"`
	Formula string `json:"formula"`
	Note    string `json:"note"`
}

type Content struct {
	Overview    Overview    `json:"overview"`
	Education   Education   `json:"education"`
	Methodology Methodology `json:"methodology"`
}

// Default возвращает тексты для Кечаматана Чисаруа
func Default() Content {
	return Content{
		Overview: Overview{
			Title:     "Mitigasi Risiko Gempa Bumi Terintegrasi",
			StudyArea: "Kecamatan Cisarua, Jawa Barat",
			Intro: "Platform ini dirancang untuk memberikan informasi risiko gempa bumi secara spesifik lokasi (mikrozonasi) " +
				"menggunakan pendekatan Weighted Overlay dari parameter geofisika.",
			Parameters: []Parameter{
				{Name: "Peak Ground Acceleration (PGA)", Description: "Percepatan tanah maksimum."},
				{Name: "Vs30", Description: "Kecepatan gelombang geser (kekerasan tanah)."},
				{Name: "Litologi", Description: "Jenis batuan geologi."},
				{Name: "Jarak Patahan", Description: "Kedekatan dengan Sesar Lembang & Cimandiri."},
			},
			Stats: []Stat{
				{Label: "Populasi Cisarua", Value: "± 80.000 Jiwa"},
				{Label: "Potensi Mag. Sesar Lembang", Value: "6.8 Mw", Note: "Siaga"},
			},
			Notice: "Prototype ini menggunakan data simulasi untuk keperluan demonstrasi proposal.",
		},
		Education: Education{
			PGA: Article{
				Title:        "Peak Ground Acceleration (PGA)",
				ImageURL:     "https://upload.wikimedia.org/wikipedia/commons/d/d3/Shakemap_Example.jpg",
				ImageCaption: "Contoh Peta PGA (USGS)",
				Paragraphs: []string{
					"Peak Ground Acceleration (PGA) adalah ukuran seberapa kuat tanah berguncang saat gempa terjadi. " +
						"Berbeda dengan Skala Richter yang mengukur energi di pusat gempa, PGA mengukur dampak di lokasi Anda berdiri.",
					"Nilai PGA dinyatakan dalam satuan gravitasi (g). Semakin tinggi nilai PGA di suatu lokasi, semakin besar " +
						"guncangan yang dirasakan dan semakin tinggi potensi kerusakan pada bangunan dan infrastruktur.",
				},
			},
			Evacuation: []EvacuationStep{
				{Order: 1, Name: "Drop", Instruction: "Jatuhkan diri ke lantai."},
				{Order: 2, Name: "Cover", Instruction: "Lindungi kepala dan leher (masuk ke bawah meja)."},
				{Order: 3, Name: "Hold On", Instruction: "Pegangan pada kaki meja."},
			},
		},
		Methodology: Methodology{
			Method:  "Weighted Overlay",
			Formula: "RiskIndex = (W_PGA * S_PGA) + (W_Vs30 * S_Vs30) + (W_Dist * S_Dist)",
			Note:    "Dimana bobot (W) ditentukan berdasarkan AHP (Analytic Hierarchy Process).",
		},
	}
}
