package models

// RowIDColumn имя служебной колонки со стабильным идентификатором строки.
// Никогда не редактируется и исключается из editable columns.
const RowIDColumn = "row_id"

// Row представляет одну карантинную строку: запись, не прошедшую
// валидацию data-quality pipeline и ожидающую ручного исправления.
// Baseline-значения неизменяемы после загрузки; правки живут отдельным
// overlay в EditTracker и накладываются при чтении.
type Row struct {
	ID     string            `json:"row_id"` // ID стабильный идентификатор строки
	Values map[string]string `json:"values"` // Values значение на каждую колонку манифеста
}

// Clone возвращает глубокую копию строки.
// Используется optimistic-update путём RowStore, чтобы baseline
// не делил map со строкой, отданной наружу.
func (r *Row) Clone() Row {
	values := make(map[string]string, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	return Row{ID: r.ID, Values: values}
}
