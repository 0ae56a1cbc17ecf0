package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/RosterboT/internal/router"
	"github.com/Kerhoff/RosterboT/internal/service"
)

// All returns every command handler, with the aliases and texts configured on
// svc. The help command comes last and lists the others.
func All(svc *service.Service, logger *logrus.Logger) []router.CommandHandler {
	texts := svc.Texts()

	commands := []router.CommandHandler{
		NewListHandler(texts.Aliases.List, svc, logger),
		NewRegisterHandler(texts.Aliases.Register, svc, logger),
		NewEchoHandler(texts.Aliases.Echo, texts.EchoPrefix),
	}

	return append(commands, NewHelpHandler(texts.Aliases.Help, texts.HelpHeader, commands))
}
