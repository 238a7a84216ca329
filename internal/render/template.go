package render

import "html/template"

// statsTemplate вёрстка картинки статистики. Шрифты и ApexCharts тянутся
// из CDN внутри headless-браузера рендер-сервиса.
var statsTemplate = template.Must(template.New("stats").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <script src="https://cdn.jsdelivr.net/npm/apexcharts"></script>
    <style>
        @import url('https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap');
        * { font-family: 'Inter', sans-serif; margin: 0; padding: 0; box-sizing: border-box; }
        body { width: {{.Width}}px; background: #f5f5f5; padding: 28px; }
        .section { background: #fff; border-radius: 20px; padding: 36px; margin-bottom: 20px; }
        .section-title { font-size: 26px; font-weight: 600; color: #333; margin-bottom: 28px; padding-bottom: 16px; border-bottom: 4px solid #7c3aed; display: inline-block; }
        .positive { color: #10b981; }
        .negative { color: #ef4444; }
    </style>
</head>
<body>
    <!-- Шапка -->
    <div class="section" style="display: flex; justify-content: space-between; align-items: center; padding: 14px 24px;">
        <div style="display: flex; align-items: center; gap: 12px;">
            {{if .Logo}}<img src="{{.Logo}}" style="width: 40px; height: 40px; border-radius: 10px; object-fit: cover;" />{{end}}
            <div>
                <div style="font-size: 30px; font-weight: 700; color: #1a1a1a;">MAXFRAME.RU</div>
            </div>
        </div>
        <div style="text-align: right;">
            <div style="font-size: 24px; font-weight: 600; color: #333;">{{.Date}}</div>
        </div>
    </div>

    <!-- Информация о канале -->
    <div class="section" style="padding: 36px;">
        <div style="display: flex; gap: 32px; align-items: center;">
            {{if .Avatar}}<img src="{{.Avatar}}" style="width: 130px; height: 130px; border-radius: 20px; object-fit: cover;" />
            {{else}}<div style="width: 130px; height: 130px; background: #7c3aed; border-radius: 20px;"></div>{{end}}
            <div style="flex: 1;">
                <div style="font-size: 34px; font-weight: 600; color: #1a1a1a; margin-bottom: 14px;">{{.ChannelName}}</div>
                <div style="display: flex; gap: 14px; align-items: center; flex-wrap: wrap;">
                    {{range .Categories}}<span style="font-size: 18px; padding: 10px 20px; background: #f0f0f0; border-radius: 20px; color: #666;">{{.}}</span>{{end}}
                    {{if .IsSuspicious}}<span style="font-size: 18px; padding: 10px 20px; background: #fef2f2; border-radius: 20px; color: #ef4444; font-weight: 600;">Накрутка / Фрод: Обнаружено</span>
                    {{else}}<span style="font-size: 18px; padding: 10px 20px; background: #f0fdf4; border-radius: 20px; color: #10b981; font-weight: 600;">Накрутка / Фрод: Не обнаружено</span>{{end}}
                </div>
            </div>
            <div style="text-align: right; padding-left: 32px; border-left: 3px solid #eee;">
                <div style="font-size: 18px; color: #999; margin-bottom: 8px;">Подписчиков</div>
                <div style="font-size: 86px; font-weight: 700; color: #7c3aed; line-height: 1; white-space: nowrap;">{{.Subs}}</div>
            </div>
        </div>
    </div>

    <!-- Ряд метрик -->
    <div style="display: flex; gap: 20px; margin-bottom: 20px;">
        <div style="flex: 7; display: flex; flex-direction: column; gap: 20px; min-width: 0;">
            <div>
                <div class="section-title">Кол-во подписчиков</div>
                <div class="section" style="margin-bottom: 0; padding: 28px;">
                    <div style="display: flex; gap: 20px;">
                        {{range .Cards}}
                        <div style="flex: 1; background: #f9f9f9; border-radius: 16px; padding: 24px; text-align: center; min-width: 0;">
                            <div style="font-size: 62px; font-weight: 700; color: {{.Color}}; white-space: nowrap; overflow: hidden;">{{.Value}}</div>
                            <div style="font-size: 22px; color: #333; margin-top: 10px; font-weight: 600;">{{.Label}}</div>
                        </div>
                        {{end}}
                    </div>
                </div>
            </div>
            <div>
                <div class="section-title">Охваты</div>
                <div class="section" style="margin-bottom: 0; padding: 28px;">
                    <div style="display: flex; gap: 20px;">
                        {{range .Metrics}}
                        <div style="flex: 1; background: #f9f9f9; border-radius: 16px; padding: 24px; text-align: center; min-width: 0;">
                            <div style="font-size: 72px; font-weight: 700; color: {{.Color}}; white-space: nowrap; overflow: hidden;">{{.Value}}</div>
                            <div style="font-size: 22px; color: #333; margin-top: 10px; font-weight: 600;">{{.Label}}</div>
                        </div>
                        {{end}}
                    </div>
                </div>
            </div>
        </div>
        {{template "advPanel" .Advertisers}}
        {{template "advPanel" .Advertised}}
    </div>

    {{if .HasChart}}
    <div class="section" style="padding: 36px; margin-top: 20px;">
        <div class="section-title" style="font-size: 26px;">График</div>
        <div id="chart"></div>
    </div>

    <script>
        var options = {
            series: [{
                name: 'Подписчики',
                data: {{.Chart.Subscribers}}
            }, {
                name: 'Охваты 24ч',
                data: {{.Chart.Views24h}}
            }, {
                name: 'Охваты 48ч',
                data: {{.Chart.Views48h}}
            }],
            chart: {
                height: 380,
                type: 'line',
                background: 'transparent',
                toolbar: { show: false },
                animations: { enabled: false },
                fontFamily: 'Inter, sans-serif'
            },
            colors: ['#7c3aed', '#10b981', '#3b82f6'],
            stroke: { width: [6, 5, 5], curve: 'smooth' },
            markers: { size: 8, strokeWidth: 0 },
            dataLabels: { enabled: false },
            xaxis: {
                categories: {{.Chart.Categories}},
                labels: { style: { colors: '#666', fontSize: '18px' } },
                axisBorder: { show: false },
                axisTicks: { show: false }
            },
            yaxis: {
                labels: { style: { colors: '#666', fontSize: '18px' }, formatter: function (v) { return Math.round(v); } }
            },
            grid: { borderColor: '#eee', strokeDashArray: 0 },
            legend: {
                position: 'top',
                horizontalAlign: 'center',
                fontSize: '28px',
                labels: { colors: '#333' },
                markers: { width: 20, height: 20, radius: 20 },
                itemMargin: { horizontal: 32 }
            },
            tooltip: { enabled: false }
        };
        new ApexCharts(document.querySelector("#chart"), options).render();
    </script>
    {{end}}
</body>
</html>

{{define "advPanel"}}
        <div class="section" style="flex: 2; min-width: 0; padding: 28px; margin-bottom: 0; display: flex; flex-direction: column;">
            <div class="section-title" style="white-space: nowrap;">{{.Title}}</div>
            {{if .HasData}}
            {{range .Rows}}
            <div style="display: flex; align-items: center; gap: 16px; padding: 14px 0; border-bottom: 1px solid #f0f0f0;">
                {{if .Avatar}}<img src="{{.Avatar}}" style="width: 56px; height: 56px; border-radius: 12px; object-fit: cover;" />
                {{else}}<div style="width: 56px; height: 56px; border-radius: 12px; background: #e0e0e0;"></div>{{end}}
                <div style="flex: 1; min-width: 0;">
                    <div style="font-size: 18px; color: #333; margin-bottom: 4px; white-space: nowrap; overflow: hidden; text-overflow: ellipsis;">{{.Name}}</div>
                    <div style="font-size: 20px; color: #999; white-space: nowrap;">{{.Subs}} подписчиков</div>
                </div>
            </div>
            {{end}}
            <div style="margin-top: auto; flex: 1; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center;">
                <div style="color: #666; font-size: 26px; font-weight: 500;">Показано</div>
                <div style="color: #666; font-size: 26px; font-weight: 500;">{{.Shown}} из {{.Total}}</div>
                <div style="font-size: 22px; font-weight: 500;"><span style="color: #666; font-size: 26px; font-weight: 500">подробнее на</span> <span style="color: #666; font-size: 26px; font-weight: 500;">maxframe.ru</span></div>
            </div>
            {{else}}
            <div style="color: #999; font-size: 18px; padding: 30px 0; text-align: center;">Нет данных</div>
            {{end}}
        </div>
{{end}}`))
