package main

// @title           ERP Vidraçaria API
// @version         1.0
// @description     API para orçamentos de box, vidros avulsos e cadastros de vidraçarias

// @contact.name   API Support
// @contact.email  suporte@vitralsys.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
