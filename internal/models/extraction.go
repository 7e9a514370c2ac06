package models

// ExtractionResult は1ファイル分のテキスト抽出結果。生成後は変更しない
type ExtractionResult struct {
	Text     string             `json:"text"`
	Metadata ExtractionMetadata `json:"metadata"`
}

// ExtractionMetadata はファイル形式ごとの付帯情報
type ExtractionMetadata struct {
	PageCount  int    `json:"pageCount,omitempty"`  // PDFのみ
	SlideCount int    `json:"slideCount,omitempty"` // スライドのみ（空スライドも数える）
	Title      string `json:"title,omitempty"`
}

type UploadResponse struct {
	Success  bool                `json:"success"`
	Content  string              `json:"content,omitempty"`
	Metadata *ExtractionMetadata `json:"metadata,omitempty"`
	Error    string              `json:"error,omitempty"`
}
