package ppm

import "time"

// Metadata is the plain serializable record of a Flipnote's header, in
// the shape callers typically persist alongside exported media. The
// thumbnail frame number is 1-based, matching how Flipnote Studio
// displays it.
type Metadata struct {
	OriginalFilename     string    `json:"original_filename"`
	CurrentFilename      string    `json:"current_filename"`
	OriginalAuthorName   string    `json:"original_author_name"`
	OriginalAuthorID     string    `json:"original_author_id"`
	EditorAuthorName     string    `json:"editor_author_name"`
	EditorAuthorID       string    `json:"editor_author_id"`
	PreviousEditorID     string    `json:"previous_editor_id"`
	OwnerName            string    `json:"owner_name"`
	CreatedAt            time.Time `json:"created_at"`
	Locked               bool      `json:"locked"`
	Looped               bool      `json:"looped"`
	FrameCount           int       `json:"frame_count"`
	ThumbnailFrameNumber int       `json:"thumbnail_frame_number"`
	FrameSpeed           int       `json:"frame_speed"`
	BGMSpeed             int       `json:"bgm_speed"`
	FrameRate            float64   `json:"frame_rate"`
}

// Metadata returns the header fields as a flat record.
func (f *Flipnote) Metadata() Metadata {
	return Metadata{
		OriginalFilename:     f.OriginalFilename,
		CurrentFilename:      f.CurrentFilename,
		OriginalAuthorName:   f.OriginalAuthorName,
		OriginalAuthorID:     f.OriginalAuthorID,
		EditorAuthorName:     f.EditorAuthorName,
		EditorAuthorID:       f.EditorAuthorID,
		PreviousEditorID:     f.PreviousEditorID,
		OwnerName:            f.OwnerName,
		CreatedAt:            f.CreatedAt,
		Locked:               f.Locked,
		Looped:               f.Looped,
		FrameCount:           f.FrameCount,
		ThumbnailFrameNumber: f.ThumbnailFrame + 1,
		FrameSpeed:           f.FrameSpeed,
		BGMSpeed:             f.BGMSpeed,
		FrameRate:            f.FrameRate(),
	}
}
