package constants

import (
	"fmt"
	"path/filepath"
	"strings"
)

/* ==========================
   MediaKind (documentation_assets.file_type)
========================== */

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaOther MediaKind = "other"
)

var mediaKindLabels = map[MediaKind]string{
	MediaImage: "Foto",
	MediaVideo: "Video",
	MediaOther: "Berkas",
}

// ParseMediaKind menerima "image"/"video"/"other" atau MIME ("image/jpeg", "video/mp4").
// Nilai kosong dianggap "other"; nilai lain ditolak.
func ParseMediaKind(fileType string) (MediaKind, error) {
	ft := strings.ToLower(strings.TrimSpace(fileType))
	switch {
	case ft == "":
		return MediaOther, nil
	case ft == string(MediaImage) || strings.HasPrefix(ft, "image/"):
		return MediaImage, nil
	case ft == string(MediaVideo) || strings.HasPrefix(ft, "video/"):
		return MediaVideo, nil
	case ft == string(MediaOther) || strings.HasPrefix(ft, "application/") || strings.HasPrefix(ft, "audio/"):
		return MediaOther, nil
	}
	return "", fmt.Errorf("%w: media file_type %q", ErrUnknownValue, fileType)
}

func (k MediaKind) Label() string { return mediaKindLabels[k] }

/* ==========================
   FileKind (lampiran materi)
========================== */

type FileKind string

const (
	FilePDF          FileKind = "pdf"
	FileWord         FileKind = "word"
	FileSheet        FileKind = "sheet"
	FilePresentation FileKind = "presentation"
	FileImage        FileKind = "image"
	FileVideo        FileKind = "video"
	FileAudio        FileKind = "audio"
	FileArchive      FileKind = "archive"
	FileGeneric      FileKind = "generic"
)

var fileKindIcons = map[FileKind]string{
	FilePDF:          "📕",
	FileWord:         "📘",
	FileSheet:        "📗",
	FilePresentation: "📙",
	FileImage:        "🖼️",
	FileVideo:        "🎬",
	FileAudio:        "🎵",
	FileArchive:      "📦",
	FileGeneric:      "📄",
}

// DetectFileKind: cek MIME dulu, lalu ekstensi nama file.
func DetectFileKind(mime, filename string) FileKind {
	m := strings.ToLower(mime)
	switch {
	case m == "":
	case strings.Contains(m, "pdf"):
		return FilePDF
	case strings.Contains(m, "sheet") || strings.Contains(m, "excel"):
		return FileSheet
	case strings.Contains(m, "presentation") || strings.Contains(m, "powerpoint"):
		return FilePresentation
	case strings.Contains(m, "word") || strings.Contains(m, "document"):
		return FileWord
	case strings.Contains(m, "image"):
		return FileImage
	case strings.Contains(m, "video"):
		return FileVideo
	case strings.Contains(m, "audio"):
		return FileAudio
	case strings.Contains(m, "zip") || strings.Contains(m, "rar"):
		return FileArchive
	}
	return DetectFileKindFromExt(filename)
}

func DetectFileKindFromExt(filename string) FileKind {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return FilePDF
	case ".doc", ".docx", ".odt":
		return FileWord
	case ".xls", ".xlsx", ".csv":
		return FileSheet
	case ".ppt", ".pptx":
		return FilePresentation
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return FileImage
	case ".mp4", ".mov", ".webm":
		return FileVideo
	case ".mp3", ".wav", ".ogg":
		return FileAudio
	case ".zip", ".rar", ".7z":
		return FileArchive
	default:
		return FileGeneric
	}
}

func (k FileKind) Icon() string {
	if icon, ok := fileKindIcons[k]; ok {
		return icon
	}
	return fileKindIcons[FileGeneric]
}
