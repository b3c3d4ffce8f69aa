// Package model contains data structures for launch parameters of the CLI and the search node, plus node DTOs
package model

// SearchConfig - параметры одного запуска grepzilla, собираются парсером один раз и дальше только читаются
type SearchConfig struct {
	Query         string // что ищем
	Source        string // путь к файлу
	IgnoreCase    bool   // --ignore_case
	InvertMatch   bool   // --invert_match
	HelpRequested bool   // --help - остальные поля не заполняются и не проверяются
}

// NodeInit - параметры запуска search-node
type NodeInit struct {
	Address    string
	Env        string
	ConfigPath string
}

const DefaultEnv = "local"

// SearchTask - тело запроса POST /search
type SearchTask struct {
	TaskID      string `json:"tid"`
	Query       string `json:"query"`
	Contents    string `json:"contents"`
	IgnoreCase  bool   `json:"ignore_case"`
	InvertMatch bool   `json:"invert_match"`
}

// SearchResult - ответ search-node, HashSumm считается по Output в порядке строк
type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
