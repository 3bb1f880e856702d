package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Raw table errors
	TableDecodeError
	TableRowStructError
	DuplicateKeyError

	// Parsing errors
	LocalizationParseError
	StatParseError
	IconFormatError

	// Resolution errors
	ModifierNotFoundError
	UnknownDataTableError
	ProcessingNotFoundError
	RecipeSetNotFoundError
	WorkshopCurrencyError
	StatFormatError

	// Dataset errors
	DatasetReadError
	DatasetItemNotFoundError
	DatasetRecipeNotFoundError

	// Export errors
	ExportOpenError
	ExportSchemaError
	ExportInsertError
)
