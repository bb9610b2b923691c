package directory

import "errors"

var (
	// ErrLoadFile возвращается при ошибке чтения/разбора файла справочника
	ErrLoadFile = errors.New("directory: failed to load directory file")

	// ErrEmptySlotTemplate возвращается, если в справочнике нет сетки слотов
	ErrEmptySlotTemplate = errors.New("directory: slot template is empty")
)
