package access

// Subject es la vista mínima del usuario que necesita el resolver.
// Se construye a partir de entity.User en la capa de aplicación.
type Subject struct {
	Verified bool
	TeamID   string // vacío = sin equipo asignado
}

// Resolve calcula el set efectivo de permisos de un sujeto a partir de los
// permisos de los roles alcanzables por sus grupos (user_groups → group_roles).
//
// Es una función pura y re-entrante: cada chequeo de autorización la recomputa
// sobre un snapshot de datos ya cargados; ningún resultado anterior es
// autoritativo más allá de la petición que lo calculó.
//
// Un sujeto sin verificar o sin equipo resuelve al set vacío: es un estado
// legítimo de "sin acceso", no un error.
func Resolve(sub Subject, rolePerms []PermissionSet) PermissionSet {
	effective := NewPermissionSet()
	if !sub.Verified || sub.TeamID == "" {
		return effective
	}
	for _, perms := range rolePerms {
		effective.Merge(perms)
	}
	return effective
}

// Decide responde "¿puede el sujeto ejecutar action sobre module, opcionalmente
// dentro de scopeTeamID?".
//
//  1. Sin verificar -> false, sin importar asignaciones.
//  2. scopeTeamID presente y distinto del equipo del sujeto -> false
//     (la autoridad nunca cruza equipos; no hay delegación cross-team).
//  3. Sin equipo -> false.
//  4. true si y solo si la acción está en la unión de los roles.
//
// module y action deben venir ya validados (ParseModule/ParsePermission):
// valores desconocidos se rechazan antes de llegar aquí.
func Decide(sub Subject, module Module, action Permission, scopeTeamID string, rolePerms []PermissionSet) bool {
	if !sub.Verified {
		return false
	}
	if scopeTeamID != "" && scopeTeamID != sub.TeamID {
		return false
	}
	if sub.TeamID == "" {
		return false
	}
	return Resolve(sub, rolePerms).Has(module, action)
}
